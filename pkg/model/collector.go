package model

import (
	"fmt"
	"strings"
	"time"
)

// Well-known CollectorItem option keys.
const (
	OptionTestType     = "testType"
	OptionArtifactName = "artifactName"
)

// CollectorType classifies the kind of data a collector integration provides.
type CollectorType string

const (
	CollectorTypeSCM                CollectorType = "SCM"
	CollectorTypeCMDB               CollectorType = "CMDB"
	CollectorTypeIncident           CollectorType = "Incident"
	CollectorTypeArtifact           CollectorType = "Artifact"
	CollectorTypeBuild              CollectorType = "Build"
	CollectorTypeDeployment         CollectorType = "Deployment"
	CollectorTypeFeature            CollectorType = "Feature"
	CollectorTypeScopeOwner         CollectorType = "ScopeOwner"
	CollectorTypeScope              CollectorType = "Scope"
	CollectorTypeCodeQuality        CollectorType = "CodeQuality"
	CollectorTypeTest               CollectorType = "Test"
	CollectorTypeStaticSecurityScan CollectorType = "StaticSecurityScan"
	CollectorTypeLibraryPolicy      CollectorType = "LibraryPolicy"
	CollectorTypeChatOps            CollectorType = "ChatOps"
	CollectorTypeCloud              CollectorType = "Cloud"
	CollectorTypeProduct            CollectorType = "Product"
	CollectorTypeAppPerformance     CollectorType = "AppPerformance"
	CollectorTypeInfraPerformance   CollectorType = "InfraPerformance"
	CollectorTypeScore              CollectorType = "Score"
	CollectorTypeTeamData           CollectorType = "TeamData"
	CollectorTypeLog                CollectorType = "Log"
	CollectorTypeAudit              CollectorType = "Audit"
)

var collectorTypes = []CollectorType{
	CollectorTypeSCM,
	CollectorTypeCMDB,
	CollectorTypeIncident,
	CollectorTypeArtifact,
	CollectorTypeBuild,
	CollectorTypeDeployment,
	CollectorTypeFeature,
	CollectorTypeScopeOwner,
	CollectorTypeScope,
	CollectorTypeCodeQuality,
	CollectorTypeTest,
	CollectorTypeStaticSecurityScan,
	CollectorTypeLibraryPolicy,
	CollectorTypeChatOps,
	CollectorTypeCloud,
	CollectorTypeProduct,
	CollectorTypeAppPerformance,
	CollectorTypeInfraPerformance,
	CollectorTypeScore,
	CollectorTypeTeamData,
	CollectorTypeLog,
	CollectorTypeAudit,
}

// String returns the string representation of the collector type.
func (t CollectorType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known collector types.
func (t CollectorType) IsValid() bool {
	for _, known := range collectorTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SupportedCollectorTypes returns the names of all known collector types.
func SupportedCollectorTypes() []string {
	out := make([]string, 0, len(collectorTypes))
	for _, t := range collectorTypes {
		out = append(out, string(t))
	}
	return out
}

// ParseCollectorType converts s into a CollectorType, ignoring case.
func ParseCollectorType(s string) (CollectorType, error) {
	trimmed := strings.TrimSpace(s)
	for _, t := range collectorTypes {
		if strings.EqualFold(trimmed, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown collector type %q, supported values: %s",
		s, strings.Join(SupportedCollectorTypes(), ", "))
}

// CollectorItem is one instance of a data-collector integration, e.g. one CI
// build job. Options carries the collector specific configuration.
type CollectorItem struct {
	ID            string         `json:"id" yaml:"id" bson:"_id"`
	CollectorID   string         `json:"collectorId,omitempty" yaml:"collectorId,omitempty" bson:"collectorId,omitempty"`
	CollectorType CollectorType  `json:"collectorType,omitempty" yaml:"collectorType,omitempty" bson:"collectorType,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty" bson:"description,omitempty"`
	NiceName      string         `json:"niceName,omitempty" yaml:"niceName,omitempty" bson:"niceName,omitempty"`
	AltIdentifier string         `json:"altIdentifier,omitempty" yaml:"altIdentifier,omitempty" bson:"altIdentifier,omitempty"`
	Enabled       bool           `json:"enabled" yaml:"enabled" bson:"enabled"`
	Pushed        bool           `json:"pushed" yaml:"pushed" bson:"pushed"`
	LastUpdated   *time.Time     `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	Options       map[string]any `json:"options,omitempty" yaml:"options,omitempty" bson:"options,omitempty"`
}

// HasAltIdentifier reports whether the item carries an alternate identifier.
func (c *CollectorItem) HasAltIdentifier() bool {
	return c.AltIdentifier != ""
}

// StringOption returns the option stored under key when it is a string.
func (c *CollectorItem) StringOption(key string) (string, bool) {
	if c.Options == nil {
		return "", false
	}
	v, ok := c.Options[key].(string)
	return v, ok
}
