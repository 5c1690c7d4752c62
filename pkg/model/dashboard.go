package model

// Dashboard is a configured view associating widgets with a business
// service/application pair.
type Dashboard struct {
	ID      string   `json:"id" yaml:"id" bson:"_id"`
	Title   string   `json:"title,omitempty" yaml:"title,omitempty" bson:"title,omitempty"`
	Widgets []Widget `json:"widgets,omitempty" yaml:"widgets,omitempty" bson:"widgets,omitempty"`

	// Application is only populated for next-gen dashboards.
	Application *Application `json:"application,omitempty" yaml:"application,omitempty" bson:"application,omitempty"`

	ConfigurationItemBusServName string `json:"configurationItemBusServName,omitempty" yaml:"configurationItemBusServName,omitempty" bson:"configurationItemBusServName,omitempty"`
	ConfigurationItemBusAppName  string `json:"configurationItemBusAppName,omitempty" yaml:"configurationItemBusAppName,omitempty" bson:"configurationItemBusAppName,omitempty"`
}

// Widget is a dashboard element referencing exactly one Component.
type Widget struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty" bson:"id,omitempty"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty" bson:"name,omitempty"`
	ComponentID string         `json:"componentId" yaml:"componentId" bson:"componentId"`
	Options     map[string]any `json:"options,omitempty" yaml:"options,omitempty" bson:"options,omitempty"`
}

// Application groups the components of a next-gen dashboard.
type Application struct {
	Name       string      `json:"name,omitempty" yaml:"name,omitempty" bson:"name,omitempty"`
	Components []Component `json:"components,omitempty" yaml:"components,omitempty" bson:"components,omitempty"`
}

// FirstWidgetComponentID returns the component referenced by the first widget.
func (d *Dashboard) FirstWidgetComponentID() (string, bool) {
	if d == nil || len(d.Widgets) == 0 {
		return "", false
	}
	id := d.Widgets[0].ComponentID
	return id, id != ""
}

// FirstApplicationComponentID returns the first component of the dashboard's
// application.
func (d *Dashboard) FirstApplicationComponentID() (string, bool) {
	if d == nil || d.Application == nil || len(d.Application.Components) == 0 {
		return "", false
	}
	id := d.Application.Components[0].ID
	return id, id != ""
}

// Matches reports whether the dashboard's configuration item pair is exactly
// businessService/businessApplication.
func (d *Dashboard) Matches(businessService, businessApplication string) bool {
	return d.ConfigurationItemBusServName == businessService &&
		d.ConfigurationItemBusAppName == businessApplication
}
