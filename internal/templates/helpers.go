package templates

import (
	"github.com/csg33k/palmwatch/internal/controller"
	"github.com/csg33k/palmwatch/internal/domain"
)

// title is the page heading for a profile.
func title(p controller.Profile) string {
	if p.Name == domain.ProfileDashboard {
		return "Palm Risk Dashboard"
	}
	return "Palm Risk Assessment"
}

// fieldLabel marks required fields with an asterisk.
func fieldLabel(f domain.Field) string {
	if f.Required {
		return f.Label + " *"
	}
	return f.Label
}
