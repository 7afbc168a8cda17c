package content

import "spawnsmart/internal/domain"

// seedSuppliers is the bundled supplier catalog the seed tool uploads
// to an empty CMS space
var seedSuppliers = []domain.Supplier{
	{
		ID:           "northspore",
		Name:         "North Spore",
		Description:  "Premium sterile substrates",
		URL:          "https://northspore.com/collections/sterile-substrates",
		Featured:     true,
		ReferralCode: "MYCO10",
		Type:         domain.SupplierSubstrate,
		Products: []domain.Product{
			{Name: "Boomr Bag", Description: "Ready-to-fruit substrate"},
			{Name: "Sterile Substrate", Description: "Various sterile options"},
		},
	},
	{
		ID:          "mycolabs",
		Name:        "Myco Labs",
		Description: "Quality mushroom grow bags",
		URL:         "https://mycolabs.com/collections/mushroom-grow-bags",
		Featured:    true,
		Type:        domain.SupplierSubstrate,
		Products: []domain.Product{
			{Name: "All-in-One Bags", Description: "Complete growing solution"},
			{Name: "Bulk Substrate Bags", Description: "For larger grows"},
		},
	},
	{
		ID:           "mushroomsupplies",
		Name:         "Mushroom Supplies",
		Description:  "Premium mushroom substrate",
		URL:          "https://www.mushroomsupplies.com/product-category/mushroom-substrates/",
		Featured:     true,
		ReferralCode: "SPAWNIT",
		Type:         domain.SupplierSubstrate,
		Products: []domain.Product{
			{Name: "Manure-Based", Description: "For coprophilic species"},
			{Name: "Hardwood-Based", Description: "For wood-loving species"},
		},
	},
	{
		ID:          "boomershroomer",
		Name:        "Boomer Shroomer",
		Description: "Bulk substrate options",
		URL:         "https://www.boomershroomer.com/product/bulk-substrate/",
		Featured:    true,
		Type:        domain.SupplierSubstrate,
		Products: []domain.Product{
			{Name: "CVG Mix", Description: "Ready-to-use CVG substrate"},
			{Name: "Bulk Casing", Description: "For casing layers"},
		},
	},
	{
		ID:           "midnightmushroom",
		Name:         "Midnight Mushroom Co",
		Description:  "Ready-to-use manure substrate",
		URL:          "https://midnightmushroom.co/collections/manure-based-substrates",
		Featured:     true,
		ReferralCode: "SPAWNIT10",
		Type:         domain.SupplierSubstrate,
		Products: []domain.Product{
			{Name: "Horse Manure", Description: "Pasteurized and ready to use"},
			{Name: "Specialty Mixes", Description: "Custom substrate blends"},
		},
	},
	{
		ID:          "pnwspore",
		Name:        "PNW Spore Co.",
		Description: "Quality microscopy supplies",
		URL:         "https://pnwspore.com/",
		Featured:    true,
		Type:        domain.SupplierSpores,
		Products: []domain.Product{
			{Name: "Spore Syringes", Description: "For microscopy research"},
			{Name: "Spore Prints", Description: "Various species available"},
		},
	},
	{
		ID:          "highdesertspores",
		Name:        "High Desert Spores",
		Description: "Premium microscopy supplies",
		URL:         "https://highdesertspores.com/",
		Featured:    true,
		Type:        domain.SupplierSpores,
		Products: []domain.Product{
			{Name: "Microscopy Kits", Description: "Complete research kits"},
			{Name: "Exotic Varieties", Description: "Rare spore varieties"},
		},
	},
	{
		ID:          "sporeworks",
		Name:        "SporeWorks",
		Description: "Trusted source for microscopy supplies",
		URL:         "https://sporeworks.com/",
		Featured:    true,
		Type:        domain.SupplierSpores,
		Products: []domain.Product{
			{Name: "Spore Syringes", Description: "For microscopy research"},
			{Name: "Spore Prints", Description: "Various species available"},
		},
	},
	{
		ID:          "lilshopofspores",
		Name:        "Lil' Shop of Spores",
		Description: "Quality microscopy supplies",
		URL:         "https://lilshopofspores.com/",
		Featured:    true,
		Type:        domain.SupplierSpores,
		Products: []domain.Product{
			{Name: "Microscopy Kits", Description: "Complete research kits"},
			{Name: "Exotic Varieties", Description: "Rare spore varieties"},
		},
	},
	{
		ID:           "shroomsupply",
		Name:         "Shroom Supply",
		Description:  "Pre-sterilized grain spawn bags",
		URL:          "https://www.shroomsupply.com/grain-spawn",
		Featured:     true,
		ReferralCode: "SPAWN10",
		Type:         domain.SupplierGrain,
		Products: []domain.Product{
			{Name: "Rye Berries", Description: "Classic grain spawn option"},
			{Name: "Millet Spawn", Description: "Small grain for faster colonization"},
		},
	},
	{
		ID:          "outgrow",
		Name:        "Out-Grow",
		Description: "Quality grain spawn products",
		URL:         "https://www.out-grow.com/grain-spawn-bags/",
		Featured:    true,
		Type:        domain.SupplierGrain,
		Products: []domain.Product{
			{Name: "Sterilized Grain Bags", Description: "Ready to inoculate"},
			{Name: "Master's Mix", Description: "Premium grain blend"},
		},
	},
	{
		ID:          "myctyson",
		Name:        "Myc Tyson",
		Description: "Premium grain spawn bags",
		URL:         "https://myctyson.com/shop/colonized-mushroom-substrates/sterilized-grain-bags/",
		Type:        domain.SupplierGrain,
		Products: []domain.Product{
			{Name: "Rye Grain Bags", Description: "Professional quality"},
			{Name: "Wild Bird Seed", Description: "Economical option"},
		},
	},
	{
		ID:           "midwestgrowkits",
		Name:         "Midwest Grow Kits",
		Description:  "Complete growing equipment",
		URL:          "https://www.midwestgrowkits.com/mushroom-growing-supplies/",
		Featured:     true,
		ReferralCode: "SPAWNIT15",
		Type:         domain.SupplierAccessories,
		Products: []domain.Product{
			{Name: "Monotubs", Description: "Professional growing containers"},
			{Name: "Humidity Controllers", Description: "Automated environment control"},
		},
	},
	{
		ID:          "mycosupply",
		Name:        "Myco Supply",
		Description: "Cultivation tools and equipment",
		URL:         "https://mycosupply.com/product-category/tools-equipment/",
		Featured:    true,
		Type:        domain.SupplierAccessories,
		Products: []domain.Product{
			{Name: "Flow Hoods", Description: "Professional lab equipment"},
			{Name: "Pressure Cookers", Description: "For sterilization"},
		},
	},
	{
		ID:           "fungi",
		Name:         "Fungi.com",
		Description:  "Premium cultivation supplies",
		URL:          "https://fungi.com/collections/cultivation-equipment",
		ReferralCode: "FUNGI10",
		Type:         domain.SupplierAccessories,
		Products: []domain.Product{
			{Name: "Grow Chambers", Description: "Professional fruiting chambers"},
			{Name: "Cultivation Books", Description: "Educational resources"},
		},
	},
}

var seedArticles = []domain.EducationalItem{
	{
		Title:       "Getting Started with Mushroom Cultivation",
		Description: "Learn the basics of mushroom cultivation, including terminology, equipment, and processes.",
		Category:    "basics",
	},
	{
		Title:       "Understanding Spawn-to-Substrate Ratios",
		Description: "Why spawn-to-substrate ratios matter and how they affect colonization times and yields.",
		Category:    "basics",
	},
	{
		Title:       "Substrate Preparation 101",
		Description: "How to properly prepare and pasteurize different substrate types for optimal results.",
		Category:    "basics",
	},
}

var seedFAQs = []domain.FAQ{
	{
		Question: "What is spawn?",
		Answer:   "Spawn is a substrate, such as grain or sawdust, that has been fully colonized by mushroom mycelium. It serves as the \"seed\" to inoculate bulk substrate.",
		Category: "general",
	},
	{
		Question: "Why is the spawn-to-substrate ratio important?",
		Answer:   "The ratio affects colonization speed, contamination resistance, and potential yield. Higher spawn ratios colonize faster but can be more expensive.",
		Category: "general",
	},
	{
		Question: "What substrate should I use for beginners?",
		Answer:   "CVG (coco coir, vermiculite, gypsum) is recommended for beginners due to its simplicity, contamination resistance, and good yields.",
		Category: "general",
	},
}

// SeedSuppliers returns the bundled supplier catalog
func SeedSuppliers() []domain.Supplier {
	out := make([]domain.Supplier, len(seedSuppliers))
	copy(out, seedSuppliers)
	return out
}

// SeedArticles returns the bundled educational articles
func SeedArticles() []domain.EducationalItem {
	out := make([]domain.EducationalItem, len(seedArticles))
	copy(out, seedArticles)
	return out
}

// SeedFAQs returns the bundled FAQ entries
func SeedFAQs() []domain.FAQ {
	out := make([]domain.FAQ, len(seedFAQs))
	copy(out, seedFAQs)
	return out
}
