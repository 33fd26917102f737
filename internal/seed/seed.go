package seed

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// lookupSeed is one seeded reference record.
type lookupSeed struct {
	Name  string
	Color string
}

var typeSeeds = []lookupSeed{
	{Name: "DEBIT", Color: "#ef4444"},
	{Name: "CREDIT", Color: "#10b981"},
}

var wealthComponentSeeds = []lookupSeed{
	{Name: "salary", Color: "#22c55e"},
	{Name: "savings", Color: "#3b82f6"},
	{Name: "fixed-deposit", Color: "#6366f1"},
	{Name: "mutual-funds", Color: "#8b5cf6"},
	{Name: "stocks", Color: "#a855f7"},
	{Name: "real-estate", Color: "#d946ef"},
	{Name: "gold", Color: "#eab308"},
	{Name: "crypto", Color: "#f97316"},
	{Name: "emergency-fund", Color: "#14b8a6"},
	{Name: "retirement", Color: "#64748b"},
}

var fundingSourceSeeds = []lookupSeed{
	{Name: "cash", Color: "#84cc16"},
	{Name: "hdfc-bank", Color: "#0ea5e9"},
	{Name: "sbi-bank", Color: "#2563eb"},
	{Name: "paypal", Color: "#7c3aed"},
	{Name: "crypto-wallet", Color: "#f59e0b"},
}

var tagSeeds = []lookupSeed{
	{Name: "income", Color: "#16a34a"},
	{Name: "groceries", Color: "#ca8a04"},
	{Name: "rent", Color: "#dc2626"},
	{Name: "utilities", Color: "#0891b2"},
	{Name: "entertainment", Color: "#c026d3"},
	{Name: "travel", Color: "#0d9488"},
	{Name: "health", Color: "#e11d48"},
}

// templateSeed describes one seeded transaction blueprint. References are by
// name and resolved against the lookup tables at insert time.
type templateSeed struct {
	Name            string
	Amount          string
	NetAmount       string
	Type            string
	DateOffset      int
	FundingSource   string
	WealthComponent string
	Tags            []string
	Description     string
}

var templateSeeds = []templateSeed{
	{
		Name:            "Monthly Salary",
		Amount:          "85000",
		NetAmount:       "85000",
		Type:            "CREDIT",
		DateOffset:      0,
		FundingSource:   "hdfc-bank",
		WealthComponent: "salary",
		Tags:            []string{"income"},
		Description:     "Salary credit for the month",
	},
	{
		Name:            "Grocery Shopping",
		Amount:          "4500",
		NetAmount:       "-4500",
		Type:            "DEBIT",
		DateOffset:      0,
		FundingSource:   "cash",
		WealthComponent: "savings",
		Tags:            []string{"groceries"},
		Description:     "Weekly grocery run",
	},
	{
		Name:            "House Rent",
		Amount:          "25000",
		NetAmount:       "-25000",
		Type:            "DEBIT",
		DateOffset:      1,
		FundingSource:   "hdfc-bank",
		WealthComponent: "savings",
		Tags:            []string{"rent"},
		Description:     "Monthly house rent",
	},
	{
		Name:            "Electricity Bill",
		Amount:          "2200",
		NetAmount:       "-2200",
		Type:            "DEBIT",
		DateOffset:      5,
		FundingSource:   "sbi-bank",
		WealthComponent: "savings",
		Tags:            []string{"utilities"},
		Description:     "Monthly electricity bill",
	},
}

// Run bootstraps the database: the singleton config record, the lookup
// tables, the templates, and optionally a batch of dummy transactions. Every
// step checks for existing records first so restarts are safe.
func Run(ctx context.Context, store *storage.Storage, env *config.Config) error {
	if err := seedConfig(ctx, store, env); err != nil {
		return err
	}

	lookups := []struct {
		table sqlconfig.ILookupTable
		name  string
		seeds []lookupSeed
	}{
		{store.Types, "types", typeSeeds},
		{store.WealthComponents, "wealth_components", wealthComponentSeeds},
		{store.FundingSources, "funding_sources", fundingSourceSeeds},
		{store.Tags, "tags", tagSeeds},
	}
	for _, lookup := range lookups {
		if err := seedLookups(ctx, lookup.table, lookup.name, lookup.seeds); err != nil {
			return err
		}
	}

	if err := seedTemplates(ctx, store); err != nil {
		return err
	}

	if env.SeedDummyData {
		if err := seedDummyTransactions(ctx, store); err != nil {
			return err
		}
	}

	return nil
}

func seedConfig(ctx context.Context, store *storage.Storage, env *config.Config) error {
	_, err := store.Config.FindSingleton(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if env.AccessPassword == "" {
		logrus.Warn("Seed.Config.skipped: ACCESS_PASS not set, login will return 404")
		return nil
	}

	hashed, err := auth.HashPassword(env.AccessPassword)
	if err != nil {
		return err
	}

	if _, err := store.Config.Insert(ctx, &sqlconfig.ConfigCreate{
		Name:           "Owner",
		AccessPassword: hashed,
	}); err != nil {
		return err
	}

	logrus.Info("Seed.Config.created")
	return nil
}

func seedLookups(ctx context.Context, table sqlconfig.ILookupTable, tableName string, seeds []lookupSeed) error {
	created := 0
	for _, seed := range seeds {
		existing, err := table.FindByName(ctx, seed.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if _, err := table.Insert(ctx, &sqlconfig.LookupCreate{
			Name:  seed.Name,
			Color: seed.Color,
		}); err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		logrus.WithField("created", created).Infof("Seed.%v.created", tableName)
	}
	return nil
}

func seedTemplates(ctx context.Context, store *storage.Storage) error {
	for _, seed := range templateSeeds {
		existing, err := store.Templates.FindByName(ctx, seed.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		create, tagIDs, err := resolveTemplateSeed(ctx, store, seed)
		if err != nil {
			return err
		}

		templateID, err := store.Templates.Insert(ctx, create)
		if err != nil {
			return err
		}
		if err := store.Templates.InsertTagLinks(ctx, templateID, tagIDs); err != nil {
			return err
		}

		logrus.WithField("template", seed.Name).Info("Seed.Templates.created")
	}
	return nil
}

func resolveTemplateSeed(ctx context.Context, store *storage.Storage, seed templateSeed) (*sqlconfig.TemplateCreate, []uuid.UUID, error) {
	typeRow, err := requireLookup(ctx, store.Types, seed.Type)
	if err != nil {
		return nil, nil, err
	}
	wealthRow, err := requireLookup(ctx, store.WealthComponents, seed.WealthComponent)
	if err != nil {
		return nil, nil, err
	}
	fundingRow, err := requireLookup(ctx, store.FundingSources, seed.FundingSource)
	if err != nil {
		return nil, nil, err
	}

	amount, err := decimal.NewFromString(seed.Amount)
	if err != nil {
		return nil, nil, err
	}
	netAmount, err := decimal.NewFromString(seed.NetAmount)
	if err != nil {
		return nil, nil, err
	}

	tagIDs := make([]uuid.UUID, 0, len(seed.Tags))
	for _, tagName := range seed.Tags {
		tagRow, err := requireLookup(ctx, store.Tags, tagName)
		if err != nil {
			return nil, nil, err
		}
		tagIDs = append(tagIDs, tagRow.ID)
	}

	return &sqlconfig.TemplateCreate{
		Name:              seed.Name,
		Amount:            amount,
		NetAmount:         netAmount,
		TypeID:            typeRow.ID,
		DateOffset:        seed.DateOffset,
		FundingSourceID:   uuid.NullUUID{UUID: fundingRow.ID, Valid: true},
		WealthComponentID: wealthRow.ID,
		Description:       seed.Description,
	}, tagIDs, nil
}

func requireLookup(ctx context.Context, table sqlconfig.ILookupTable, name string) (*sqlconfig.Lookup, error) {
	row, err := table.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.New("seed: missing lookup record " + name)
	}
	return row, nil
}

// seedDummyTransactions materializes every template a few times over the
// past months so a fresh deployment has a browsable dashboard.
func seedDummyTransactions(ctx context.Context, store *storage.Storage) error {
	count, err := store.Transactions.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	templates := make([]*sqlconfig.Template, 0, len(templateSeeds))
	templateIDs := make([]uuid.UUID, 0, len(templateSeeds))
	for _, seed := range templateSeeds {
		template, err := store.Templates.FindByName(ctx, seed.Name)
		if err != nil {
			return err
		}
		if template == nil {
			continue
		}
		templates = append(templates, template)
		templateIDs = append(templateIDs, template.ID)
	}

	links, err := store.Templates.ListTagLinks(ctx, templateIDs)
	if err != nil {
		return err
	}
	tagsByTemplate := make(map[uuid.UUID][]uuid.UUID)
	for _, link := range links {
		tagsByTemplate[link.TemplateID] = append(tagsByTemplate[link.TemplateID], link.TagID)
	}

	created := 0
	now := time.Now()
	for monthsBack := 0; monthsBack < 3; monthsBack++ {
		for _, template := range templates {
			create := template.ToTransactionCreate(now.AddDate(0, -monthsBack, 0))
			transactionID, err := store.Transactions.Insert(ctx, create)
			if err != nil {
				return err
			}
			if err := store.Transactions.InsertTagLinks(ctx, transactionID, tagsByTemplate[template.ID]); err != nil {
				return err
			}
			created++
		}
	}

	logrus.WithField("created", created).Info("Seed.Transactions.created")
	return nil
}
