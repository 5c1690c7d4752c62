package model

// Component is a logical grouping of collector integrations for a business
// application.
//
// The embedded CollectorItems are cached copies written when the component
// was last saved. They are only trustworthy as an index of identifiers; the
// current state of each item lives in the collector item store.
type Component struct {
	ID             string                            `json:"id" yaml:"id" bson:"_id"`
	Name           string                            `json:"name,omitempty" yaml:"name,omitempty" bson:"name,omitempty"`
	CollectorItems map[CollectorType][]CollectorItem `json:"collectorItems,omitempty" yaml:"collectorItems,omitempty" bson:"collectorItems,omitempty"`
}

// CollectorItemsOf returns the embedded items recorded under t.
func (c *Component) CollectorItemsOf(t CollectorType) []CollectorItem {
	if c == nil || c.CollectorItems == nil {
		return nil
	}
	return c.CollectorItems[t]
}

// CollectorItemIDs returns the identifiers of the embedded items of type t,
// preserving their recorded order.
func (c *Component) CollectorItemIDs(t CollectorType) []string {
	items := c.CollectorItemsOf(t)
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		ids = append(ids, item.ID)
	}
	return ids
}
