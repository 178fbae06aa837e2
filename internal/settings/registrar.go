package settings

import "fbverify/config"

// Registrar declares the verification code option on the admin settings surface.
type Registrar struct {
	registry Registry
	cfg      *config.VerificationConfig
}

func NewRegistrar(registry Registry, cfg *config.VerificationConfig) *Registrar {
	return &Registrar{registry: registry, cfg: cfg}
}

// Register adds the section and its single field. Call once at startup.
func (r *Registrar) Register() {
	r.registry.AddSection(Section{
		ID:    r.cfg.SectionID,
		Title: r.cfg.SectionTitle,
		Page:  r.cfg.Page,
	})
	r.RegisterField(r.cfg.Page, r.cfg.SectionID, Field{
		Name:        r.cfg.OptionName,
		Label:       r.cfg.Label,
		Description: r.cfg.Description,
	})
}

// RegisterField adds f to a section and registers its value as plain text.
func (r *Registrar) RegisterField(page, section string, f Field) {
	r.registry.AddField(page, section, f)
	r.registry.RegisterSetting(page, f.Name, SanitizeTextField)
}
