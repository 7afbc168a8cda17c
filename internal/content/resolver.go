package content

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"spawnsmart/internal/contentful"
	"spawnsmart/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Content type ids in the CMS space
const (
	typeSupplier         = "supplier"
	typeProduct          = "product"
	typeSpore            = "spore"
	typeEducational      = "educationalContent"
	typeFAQ              = "faq"
	typeMushroomFact     = "mushroomFact"
	typeComponentContent = "componentContent"
)

// Source records where a category's data came from after a load, so
// "empty because the CMS failed" and "genuinely empty" stay
// distinguishable internally
type Source string

const (
	SourceCMS      Source = "cms"
	SourceFallback Source = "fallback"
	SourceEmpty    Source = "empty"
)

// Resolver assembles normalized application objects from raw CMS
// entries. All collections are populated by a single load sequence and
// read-only afterwards; getters never re-fetch.
type Resolver struct {
	transport contentful.Transport
	logger    *zap.Logger

	group singleflight.Group

	mu         sync.RWMutex
	loaded     bool
	suppliers  []domain.Supplier
	spores     []domain.SporeVariety
	education  map[string][]domain.EducationalItem
	faqs       map[string][]domain.FAQ
	facts      []string
	components map[string]domain.ComponentContent
	sources    map[string]Source
}

// NewResolver creates a resolver backed by the given transport
func NewResolver(transport contentful.Transport, logger *zap.Logger) *Resolver {
	return &Resolver{
		transport:  transport,
		logger:     logger,
		education:  make(map[string][]domain.EducationalItem),
		faqs:       make(map[string][]domain.FAQ),
		components: make(map[string]domain.ComponentContent),
		sources:    make(map[string]Source),
	}
}

// ensureLoaded runs the one-time load sequence. Concurrent callers
// during loading share the same in-flight load instead of issuing
// duplicate fetches.
func (r *Resolver) ensureLoaded(ctx context.Context) {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return
	}

	r.group.Do("load", func() (any, error) {
		r.mu.RLock()
		loaded := r.loaded
		r.mu.RUnlock()
		if !loaded {
			r.load(ctx)
		}
		return nil, nil
	})
}

// Reload discards all loaded collections and runs the load sequence
// again. This is the only way to observe updated CMS content.
func (r *Resolver) Reload(ctx context.Context) {
	r.mu.Lock()
	r.loaded = false
	r.mu.Unlock()
	r.ensureLoaded(ctx)
}

// load executes the load sequence. Each step is isolated: a failing
// step leaves its collection at its empty or fallback value and never
// aborts the others.
func (r *Resolver) load(ctx context.Context) {
	suppliers, supplierIndex := r.loadSuppliers(ctx)
	r.joinProducts(ctx, suppliers, supplierIndex)

	supplierNames := make(map[string]string, len(supplierIndex))
	for entryID, idx := range supplierIndex {
		supplierNames[entryID] = suppliers[idx].Name
	}
	spores := r.loadSpores(ctx, supplierNames)
	education, faqs := r.loadEducation(ctx)
	facts := r.loadFacts(ctx)
	components := r.loadComponentContent(ctx)

	r.mu.Lock()
	r.suppliers = suppliers
	r.spores = spores
	r.education = education
	r.faqs = faqs
	r.facts = facts
	r.components = components
	r.loaded = true
	r.mu.Unlock()

	r.logger.Info("Content load complete",
		zap.Int("suppliers", len(suppliers)),
		zap.Int("spores", len(spores)),
		zap.Int("fact_count", len(facts)),
	)
}

// loadSuppliers returns resolved suppliers plus an index from CMS
// entry id to supplier position, used for link joins
func (r *Resolver) loadSuppliers(ctx context.Context) ([]domain.Supplier, map[string]int) {
	entries, err := r.transport.FetchEntries(ctx, typeSupplier, nil)
	if err != nil {
		r.logger.Error("Failed to load suppliers", zap.Error(err))
		r.setSource(typeSupplier, SourceEmpty)
		return nil, map[string]int{}
	}
	if len(entries) == 0 {
		r.setSource(typeSupplier, SourceEmpty)
		return nil, map[string]int{}
	}

	suppliers := make([]domain.Supplier, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, entry := range entries {
		supplier := domain.Supplier{
			ID:           contentful.ExtractText(entry.Fields["id"]),
			Name:         contentful.ExtractText(entry.Fields["name"]),
			Description:  contentful.ExtractText(entry.Fields["description"]),
			URL:          contentful.ExtractText(entry.Fields["url"]),
			Featured:     boolField(entry.Fields["featured"]),
			ReferralCode: contentful.ExtractText(entry.Fields["referralCode"]),
			Type:         domain.SupplierType(contentful.ExtractText(entry.Fields["type"])),
			Products:     []domain.Product{},
		}
		if supplier.ID == "" {
			supplier.ID = entry.Sys.ID
		}
		index[entry.Sys.ID] = len(suppliers)
		suppliers = append(suppliers, supplier)
	}
	r.setSource(typeSupplier, SourceCMS)
	return suppliers, index
}

// joinProducts attaches products to their suppliers by link id.
// A product whose supplier link resolves to nothing is dropped.
func (r *Resolver) joinProducts(ctx context.Context, suppliers []domain.Supplier, index map[string]int) {
	entries, err := r.transport.FetchEntries(ctx, typeProduct, nil)
	if err != nil {
		r.logger.Error("Failed to load products", zap.Error(err))
		return
	}

	dropped := 0
	for _, entry := range entries {
		linkID := contentful.LinkID(entry.Fields["supplier"])
		idx, ok := index[linkID]
		if !ok {
			dropped++
			continue
		}
		suppliers[idx].Products = append(suppliers[idx].Products, domain.Product{
			Name:        contentful.ExtractText(entry.Fields["name"]),
			Description: contentful.ExtractText(entry.Fields["description"]),
			Price:       contentful.ExtractText(entry.Fields["price"]),
			URL:         contentful.ExtractText(entry.Fields["url"]),
			SupplierID:  suppliers[idx].ID,
		})
	}
	if dropped > 0 {
		r.logger.Warn("Dropped products with unresolvable supplier links", zap.Int("dropped", dropped))
	}
}

// loadSpores normalizes spore entries. An empty or failed CMS fetch
// falls back to the bundled static dataset; only when that is also
// empty does the category end up with no data.
func (r *Resolver) loadSpores(ctx context.Context, supplierNames map[string]string) []domain.SporeVariety {
	entries, err := r.transport.FetchEntries(ctx, typeSpore, nil)
	if err != nil || len(entries) == 0 {
		if err != nil {
			r.logger.Error("Failed to load spores, using local dataset", zap.Error(err))
		}
		static := staticSporeData()
		if len(static) == 0 {
			r.setSource(typeSpore, SourceEmpty)
			return nil
		}
		r.setSource(typeSpore, SourceFallback)
		return static
	}

	spores := make([]domain.SporeVariety, 0, len(entries))
	for i, entry := range entries {
		raw := SporeRecord{
			MushroomType:      contentful.ExtractText(entry.Fields["mushroomType"]),
			Subtype:           contentful.ExtractText(entry.Fields["subtype"]),
			GrowingConditions: contentful.ExtractText(entry.Fields["growingConditions"]),
		}
		difficulty := domain.Difficulty(contentful.ExtractText(entry.Fields["difficulty"]))
		if difficulty == "" {
			difficulty = deriveDifficulty(raw)
		}
		colonization := contentful.ExtractText(entry.Fields["colonizationTime"])
		if colonization == "" {
			colonization = colonizationForDifficulty(difficulty)
		}

		suppliers := []string{}
		if linkID := contentful.LinkID(entry.Fields["store"]); linkID != "" {
			if name, ok := supplierNames[linkID]; ok {
				suppliers = append(suppliers, name)
			}
		}

		spores = append(spores, domain.SporeVariety{
			ID:                i + 1,
			Name:              contentful.ExtractText(entry.Fields["subtype"]),
			ScientificName:    raw.MushroomType,
			Type:              deriveSporeType(raw),
			Difficulty:        difficulty,
			ColonizationTime:  colonization,
			Description:       contentful.ExtractText(entry.Fields["description"]),
			Appearance:        contentful.ExtractText(entry.Fields["appearance"]),
			GrowingConditions: raw.GrowingConditions,
			Strength:          contentful.ExtractText(entry.Fields["strength"]),
			MoodEffects:       contentful.ExtractText(entry.Fields["moodEffects"]),
			MedicinalBenefits: contentful.ExtractText(entry.Fields["medicinalBenefits"]),
			CulinaryUses:      contentful.ExtractText(entry.Fields["culinaryUses"]),
			Price:             contentful.ExtractText(entry.Fields["price"]),
			URL:               contentful.ExtractText(entry.Fields["url"]),
			ImageURL:          contentful.ExtractImageURL(entry.Fields["image"]),
			Suppliers:         suppliers,
		})
	}
	r.setSource(typeSpore, SourceCMS)
	return consolidateSpores(spores)
}

// loadEducation fetches educational articles and FAQs, grouped by
// category. FAQ order is re-numbered 1-based per category.
func (r *Resolver) loadEducation(ctx context.Context) (map[string][]domain.EducationalItem, map[string][]domain.FAQ) {
	education := make(map[string][]domain.EducationalItem)
	faqs := make(map[string][]domain.FAQ)

	articles, err := r.transport.FetchEntries(ctx, typeEducational, nil)
	if err != nil {
		r.logger.Error("Failed to load educational content", zap.Error(err))
		r.setSource(typeEducational, SourceEmpty)
	} else {
		for _, entry := range articles {
			category := contentful.ExtractText(entry.Fields["category"])
			education[category] = append(education[category], domain.EducationalItem{
				Title:       contentful.ExtractText(entry.Fields["title"]),
				Description: contentful.ExtractText(entry.Fields["description"]),
				Category:    category,
				Tags:        stringsField(entry.Fields["tags"]),
			})
		}
		r.setSource(typeEducational, sourceFor(len(articles)))
	}

	faqEntries, err := r.transport.FetchEntries(ctx, typeFAQ, nil)
	if err != nil {
		r.logger.Error("Failed to load FAQs", zap.Error(err))
		r.setSource(typeFAQ, SourceEmpty)
		return education, faqs
	}
	for _, entry := range faqEntries {
		category := contentful.ExtractText(entry.Fields["category"])
		faqs[category] = append(faqs[category], domain.FAQ{
			Question: contentful.ExtractText(entry.Fields["question"]),
			Answer:   contentful.ExtractText(entry.Fields["answer"]),
			Category: category,
			Order:    intField(entry.Fields["order"]),
		})
	}
	for category := range faqs {
		list := faqs[category]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Order < list[j].Order })
		for i := range list {
			list[i].Order = i + 1
		}
	}
	r.setSource(typeFAQ, sourceFor(len(faqEntries)))
	return education, faqs
}

// loadFacts fetches mushroom facts, falling back to the hardcoded
// list when the CMS category is empty. The two sets are never merged.
func (r *Resolver) loadFacts(ctx context.Context) []string {
	entries, err := r.transport.FetchEntries(ctx, typeMushroomFact, nil)
	if err != nil || len(entries) == 0 {
		if err != nil {
			r.logger.Error("Failed to load facts, using fallback list", zap.Error(err))
		}
		r.setSource(typeMushroomFact, SourceFallback)
		return FallbackFacts()
	}

	facts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if fact := contentful.ExtractText(entry.Fields["fact"]); fact != "" {
			facts = append(facts, fact)
		}
	}
	if len(facts) == 0 {
		r.setSource(typeMushroomFact, SourceFallback)
		return FallbackFacts()
	}
	r.setSource(typeMushroomFact, SourceCMS)
	return facts
}

// loadComponentContent groups UI copy entries by component id,
// shallow-merging the nested label/button/alert/placeholder objects
// into a flat field map
func (r *Resolver) loadComponentContent(ctx context.Context) map[string]domain.ComponentContent {
	components := make(map[string]domain.ComponentContent)

	entries, err := r.transport.FetchEntries(ctx, typeComponentContent, nil)
	if err != nil {
		r.logger.Error("Failed to load component content", zap.Error(err))
		r.setSource(typeComponentContent, SourceEmpty)
		return components
	}

	for _, entry := range entries {
		componentID := contentful.ExtractText(entry.Fields["componentId"])
		if componentID == "" {
			continue
		}
		fields := domain.ComponentContent{}
		if title := contentful.ExtractText(entry.Fields["title"]); title != "" {
			fields["title"] = title
		}
		if description := contentful.ExtractText(entry.Fields["description"]); description != "" {
			fields["description"] = description
		}
		for _, nested := range []string{"labels", "buttons", "alerts", "placeholders"} {
			mergeObjectField(fields, entry.Fields[nested])
		}
		components[componentID] = fields
	}
	r.setSource(typeComponentContent, sourceFor(len(entries)))
	return components
}

// GetAllSuppliers returns every resolved supplier
func (r *Resolver) GetAllSuppliers(ctx context.Context) []domain.Supplier {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.suppliers
}

// GetFeaturedSuppliers returns suppliers flagged as featured
func (r *Resolver) GetFeaturedSuppliers(ctx context.Context) []domain.Supplier {
	return r.filterSuppliers(ctx, func(s domain.Supplier) bool { return s.Featured })
}

// GetAllSuppliersByType returns suppliers of the given type
func (r *Resolver) GetAllSuppliersByType(ctx context.Context, t domain.SupplierType) []domain.Supplier {
	return r.filterSuppliers(ctx, func(s domain.Supplier) bool { return s.Type == t })
}

// GetFeaturedSuppliersByType returns featured suppliers of the given type
func (r *Resolver) GetFeaturedSuppliersByType(ctx context.Context, t domain.SupplierType) []domain.Supplier {
	return r.filterSuppliers(ctx, func(s domain.Supplier) bool { return s.Featured && s.Type == t })
}

// GetSupplierByID returns the supplier with the given id, or nil
func (r *Resolver) GetSupplierByID(ctx context.Context, id string) *domain.Supplier {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			supplier := r.suppliers[i]
			return &supplier
		}
	}
	return nil
}

func (r *Resolver) filterSuppliers(ctx context.Context, keep func(domain.Supplier) bool) []domain.Supplier {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Supplier, 0, len(r.suppliers))
	for _, supplier := range r.suppliers {
		if keep(supplier) {
			out = append(out, supplier)
		}
	}
	return out
}

// GetAllSporeData returns every resolved spore variety
func (r *Resolver) GetAllSporeData(ctx context.Context) []domain.SporeVariety {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.spores
}

// GetEducationalContent returns the educational items in a category
func (r *Resolver) GetEducationalContent(ctx context.Context, category string) []domain.EducationalItem {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.education[category]
}

// GetFAQs returns the FAQs in a category, in display order
func (r *Resolver) GetFAQs(ctx context.Context, category string) []domain.FAQ {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.faqs[category]
}

// GetComponentContent returns the UI copy for a component. A
// component the CMS does not know falls back to the built-in copy;
// the result is never nil.
func (r *Resolver) GetComponentContent(ctx context.Context, name string) domain.ComponentContent {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fields, ok := r.components[name]; ok {
		return fields
	}
	if fields, ok := defaultComponentContent[name]; ok {
		return fields
	}
	return domain.ComponentContent{}
}

// GetRandomStaticFact returns one fact from whichever fact set the
// load produced
func (r *Resolver) GetRandomStaticFact(ctx context.Context) string {
	r.ensureLoaded(ctx)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.facts) == 0 {
		return ""
	}
	return r.facts[rand.Intn(len(r.facts))]
}

// DataSource reports where a content category's data came from after
// the load: cms, fallback, or empty
func (r *Resolver) DataSource(category string) Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if src, ok := r.sources[category]; ok {
		return src
	}
	return SourceEmpty
}

func (r *Resolver) setSource(category string, src Source) {
	r.mu.Lock()
	r.sources[category] = src
	r.mu.Unlock()
}

func sourceFor(n int) Source {
	if n == 0 {
		return SourceEmpty
	}
	return SourceCMS
}

// mergeObjectField flattens a JSON-object field's string values into
// the component's field map
func mergeObjectField(fields domain.ComponentContent, v any) {
	obj, ok := unwrapAny(v).(map[string]any)
	if !ok {
		return
	}
	for key, value := range obj {
		if text := contentful.ExtractText(value); text != "" {
			fields[key] = text
		}
	}
}

func unwrapAny(v any) any {
	if m, ok := v.(map[string]any); ok {
		if inner, ok := m["en-US"]; ok {
			return inner
		}
	}
	return v
}

func boolField(v any) bool {
	if b, ok := unwrapAny(v).(bool); ok {
		return b
	}
	return false
}

func intField(v any) int {
	if f, ok := unwrapAny(v).(float64); ok {
		return int(f)
	}
	return 0
}

func stringsField(v any) []string {
	arr, ok := unwrapAny(v).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s := contentful.ExtractText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
