package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"spawnsmart/internal/config"
	"spawnsmart/internal/content"
	"spawnsmart/internal/contentful"
	"spawnsmart/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// contentTypes defines the CMS data model the application reads
var contentTypes = []contentful.ContentType{
	{
		ID:           "supplier",
		Name:         "Supplier",
		Description:  "Represents suppliers for various mushroom cultivation products",
		DisplayField: "name",
		Fields: []contentful.ContentTypeField{
			{ID: "id", Name: "ID", Type: "Symbol", Required: true},
			{ID: "name", Name: "Name", Type: "Symbol", Required: true},
			{ID: "description", Name: "Description", Type: "Symbol", Required: true},
			{ID: "url", Name: "URL", Type: "Symbol", Required: true},
			{ID: "featured", Name: "Featured", Type: "Boolean"},
			{ID: "referralCode", Name: "Referral Code", Type: "Symbol"},
			{ID: "type", Name: "Type", Type: "Symbol", Required: true, Validations: []map[string]any{
				{"in": []string{"substrate", "spores", "grain", "accessories", "tools"}},
			}},
			{ID: "products", Name: "Products", Type: "Array", Items: &contentful.ContentTypeItems{
				Type:     "Link",
				LinkType: "Entry",
				Validations: []map[string]any{
					{"linkContentType": []string{"product"}},
				},
			}},
		},
	},
	{
		ID:           "product",
		Name:         "Product",
		Description:  "Represents products offered by suppliers",
		DisplayField: "name",
		Fields: []contentful.ContentTypeField{
			{ID: "name", Name: "Name", Type: "Symbol", Required: true},
			{ID: "description", Name: "Description", Type: "Symbol", Required: true},
			{ID: "price", Name: "Price", Type: "Symbol"},
			{ID: "url", Name: "URL", Type: "Symbol"},
			{ID: "supplier", Name: "Supplier", Type: "Link", LinkType: "Entry", Validations: []map[string]any{
				{"linkContentType": []string{"supplier"}},
			}},
		},
	},
	{
		ID:           "spore",
		Name:         "Spore",
		Description:  "Represents spore varieties and their details",
		DisplayField: "subtype",
		Fields: []contentful.ContentTypeField{
			{ID: "mushroomType", Name: "Mushroom Type", Type: "Symbol", Required: true},
			{ID: "subtype", Name: "Subtype", Type: "Symbol", Required: true},
			{ID: "sporeName", Name: "Spore Name", Type: "Symbol", Required: true},
			{ID: "price", Name: "Price", Type: "Symbol"},
			{ID: "url", Name: "URL", Type: "Symbol"},
			{ID: "store", Name: "Store", Type: "Link", LinkType: "Entry", Validations: []map[string]any{
				{"linkContentType": []string{"supplier"}},
			}},
			{ID: "growingConditions", Name: "Growing Conditions", Type: "Text"},
			{ID: "appearance", Name: "Size & Appearance", Type: "Text"},
			{ID: "strength", Name: "Strength", Type: "Symbol"},
			{ID: "moodEffects", Name: "Mood Effects", Type: "Text"},
			{ID: "description", Name: "Description", Type: "Text"},
			{ID: "culinaryUses", Name: "Culinary Uses", Type: "Text"},
			{ID: "medicinalBenefits", Name: "Medicinal Benefits", Type: "Text"},
			{ID: "difficulty", Name: "Difficulty", Type: "Symbol", Validations: []map[string]any{
				{"in": []string{"beginner", "intermediate", "advanced"}},
			}},
			{ID: "colonizationTime", Name: "Colonization Time", Type: "Symbol"},
		},
	},
	{
		ID:           "educationalContent",
		Name:         "Educational Content",
		Description:  "Represents educational articles and resources",
		DisplayField: "title",
		Fields: []contentful.ContentTypeField{
			{ID: "title", Name: "Title", Type: "Symbol", Required: true},
			{ID: "description", Name: "Description", Type: "Text", Required: true},
			{ID: "content", Name: "Content", Type: "RichText"},
			{ID: "category", Name: "Category", Type: "Symbol", Required: true, Validations: []map[string]any{
				{"in": []string{"basics", "advanced", "substrate", "spawn"}},
			}},
			{ID: "tags", Name: "Tags", Type: "Array", Items: &contentful.ContentTypeItems{Type: "Symbol"}},
		},
	},
	{
		ID:           "faq",
		Name:         "FAQ",
		Description:  "Represents frequently asked questions",
		DisplayField: "question",
		Fields: []contentful.ContentTypeField{
			{ID: "question", Name: "Question", Type: "Symbol", Required: true},
			{ID: "answer", Name: "Answer", Type: "Text", Required: true},
			{ID: "category", Name: "Category", Type: "Symbol", Required: true, Validations: []map[string]any{
				{"in": []string{"general", "substrate", "spawn", "cultivation"}},
			}},
			{ID: "order", Name: "Order", Type: "Integer"},
		},
	},
	{
		ID:           "mushroomFact",
		Name:         "Mushroom Fact",
		Description:  "Represents interesting facts about mushrooms",
		DisplayField: "fact",
		Fields: []contentful.ContentTypeField{
			{ID: "fact", Name: "Fact", Type: "Text", Required: true},
			{ID: "source", Name: "Source", Type: "Symbol"},
			{ID: "category", Name: "Category", Type: "Symbol"},
		},
	},
	{
		ID:           "componentContent",
		Name:         "Component Content",
		Description:  "Represents content for specific UI components",
		DisplayField: "componentId",
		Fields: []contentful.ContentTypeField{
			{ID: "componentId", Name: "Component ID", Type: "Symbol", Required: true},
			{ID: "title", Name: "Title", Type: "Symbol"},
			{ID: "description", Name: "Description", Type: "Text"},
			{ID: "labels", Name: "Labels", Type: "Object"},
			{ID: "buttons", Name: "Buttons", Type: "Object"},
			{ID: "alerts", Name: "Alerts", Type: "Object"},
			{ID: "placeholders", Name: "Placeholders", Type: "Object"},
		},
	},
}

func entryLink(id string) map[string]any {
	return map[string]any{
		"sys": map[string]any{
			"type":     "Link",
			"linkType": "Entry",
			"id":       id,
		},
	}
}

func seedSuppliers(ctx context.Context, client *contentful.ManagementClient, log *zap.Logger) (map[string]string, error) {
	// supplier name to entry id, used to link spore store fields
	entryIDs := make(map[string]string)

	for _, supplier := range content.SeedSuppliers() {
		entryID, err := client.CreateEntry(ctx, "supplier", map[string]any{
			"id":           supplier.ID,
			"name":         supplier.Name,
			"description":  supplier.Description,
			"url":          supplier.URL,
			"featured":     supplier.Featured,
			"referralCode": supplier.ReferralCode,
			"type":         string(supplier.Type),
		})
		if err != nil {
			return nil, fmt.Errorf("seeding supplier %s: %w", supplier.ID, err)
		}
		entryIDs[supplier.Name] = entryID

		for _, product := range supplier.Products {
			_, err := client.CreateEntry(ctx, "product", map[string]any{
				"name":        product.Name,
				"description": product.Description,
				"supplier":    entryLink(entryID),
			})
			if err != nil {
				return nil, fmt.Errorf("seeding product %s: %w", product.Name, err)
			}
		}
	}

	log.Info("Suppliers seeded", zap.Int("count", len(entryIDs)))
	return entryIDs, nil
}

func seedSpores(ctx context.Context, client *contentful.ManagementClient, supplierIDs map[string]string, log *zap.Logger) error {
	spores := content.SporeSeed()
	for _, spore := range spores {
		fields := map[string]any{
			"mushroomType":      spore.MushroomType,
			"subtype":           spore.Subtype,
			"sporeName":         spore.SporeName,
			"price":             spore.Price,
			"url":               spore.URL,
			"growingConditions": spore.GrowingConditions,
			"appearance":        spore.Appearance,
			"strength":          spore.Strength,
			"moodEffects":       spore.MoodEffects,
			"description":       spore.Description,
			"culinaryUses":      spore.CulinaryUses,
			"medicinalBenefits": spore.MedicinalBenefits,
		}
		if entryID, ok := supplierIDs[spore.Store]; ok {
			fields["store"] = entryLink(entryID)
		}
		if _, err := client.CreateEntry(ctx, "spore", fields); err != nil {
			return fmt.Errorf("seeding spore %s: %w", spore.Subtype, err)
		}
	}
	log.Info("Spores seeded", zap.Int("count", len(spores)))
	return nil
}

func seedEducation(ctx context.Context, client *contentful.ManagementClient, log *zap.Logger) error {
	for _, article := range content.SeedArticles() {
		_, err := client.CreateEntry(ctx, "educationalContent", map[string]any{
			"title":       article.Title,
			"description": article.Description,
			"category":    article.Category,
		})
		if err != nil {
			return fmt.Errorf("seeding article %q: %w", article.Title, err)
		}
	}

	for i, faq := range content.SeedFAQs() {
		_, err := client.CreateEntry(ctx, "faq", map[string]any{
			"question": faq.Question,
			"answer":   faq.Answer,
			"category": faq.Category,
			"order":    i + 1,
		})
		if err != nil {
			return fmt.Errorf("seeding faq %q: %w", faq.Question, err)
		}
	}

	log.Info("Educational content seeded")
	return nil
}

func seedFacts(ctx context.Context, client *contentful.ManagementClient, log *zap.Logger) error {
	facts := content.FallbackFacts()
	for _, fact := range facts {
		_, err := client.CreateEntry(ctx, "mushroomFact", map[string]any{
			"fact":     fact,
			"category": "general",
		})
		if err != nil {
			return fmt.Errorf("seeding fact: %w", err)
		}
	}
	log.Info("Facts seeded", zap.Int("count", len(facts)))
	return nil
}

func seedComponentContent(ctx context.Context, client *contentful.ManagementClient, log *zap.Logger) error {
	for componentID, fields := range content.DefaultComponentContent() {
		labels := make(map[string]any)
		entry := map[string]any{"componentId": componentID}
		for key, value := range fields {
			switch key {
			case "title", "description":
				entry[key] = value
			default:
				labels[key] = value
			}
		}
		if len(labels) > 0 {
			entry["labels"] = labels
		}
		if _, err := client.CreateEntry(ctx, "componentContent", entry); err != nil {
			return fmt.Errorf("seeding component content %s: %w", componentID, err)
		}
	}
	log.Info("Component content seeded")
	return nil
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	client := contentful.NewManagementClient(cfg.Contentful.SpaceID, cfg.Contentful.ManagementToken, log)

	for _, ct := range contentTypes {
		if err := client.CreateContentType(ctx, ct); err != nil {
			return fmt.Errorf("creating content type %s: %w", ct.ID, err)
		}
	}

	supplierIDs, err := seedSuppliers(ctx, client, log)
	if err != nil {
		return err
	}
	if err := seedSpores(ctx, client, supplierIDs, log); err != nil {
		return err
	}
	if err := seedEducation(ctx, client, log); err != nil {
		return err
	}
	if err := seedFacts(ctx, client, log); err != nil {
		return err
	}
	return seedComponentContent(ctx, client, log)
}

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if cfg.Contentful.SpaceID == "" || cfg.Contentful.ManagementToken == "" {
		log.Error("CONTENTFUL_SPACE_ID and CONTENTFUL_MANAGEMENT_TOKEN are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Info("Seeding Contentful space", zap.String("space_id", cfg.Contentful.SpaceID))
	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("Seed failed", zap.Error(err))
	}
	log.Info("Seed complete")
}
