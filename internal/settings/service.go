package settings

import (
	"fmt"
	"sync"
)

// Registry receives section, field and setting declarations.
type Registry interface {
	AddSection(s Section)
	AddField(page, section string, f Field)
	RegisterSetting(page, name string, sanitize SanitizeFunc)
}

type fieldEntry struct {
	page    string
	section string
	field   Field
}

type settingEntry struct {
	page     string
	name     string
	sanitize SanitizeFunc
}

// Service is the in-process Registry. It also saves submitted values for
// registered settings through the option store.
type Service struct {
	store OptionStore

	mu       sync.RWMutex
	sections []Section
	fields   []fieldEntry
	settings []settingEntry
}

func NewService(store OptionStore) *Service {
	return &Service{store: store}
}

// AddSection declares a section. Redeclaring an ID on the same page replaces it.
func (s *Service) AddSection(sec Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.sections {
		if existing.Page == sec.Page && existing.ID == sec.ID {
			s.sections[i] = sec
			return
		}
	}
	s.sections = append(s.sections, sec)
}

func (s *Service) AddField(page, section string, f Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.fields {
		if existing.page == page && existing.field.Name == f.Name {
			s.fields[i] = fieldEntry{page: page, section: section, field: f}
			return
		}
	}
	s.fields = append(s.fields, fieldEntry{page: page, section: section, field: f})
}

func (s *Service) RegisterSetting(page, name string, sanitize SanitizeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.settings {
		if existing.page == page && existing.name == name {
			s.settings[i].sanitize = sanitize
			return
		}
	}
	s.settings = append(s.settings, settingEntry{page: page, name: name, sanitize: sanitize})
}

// Sections returns the sections declared on page in declaration order.
func (s *Service) Sections(page string) []Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Section
	for _, sec := range s.sections {
		if sec.Page == page {
			out = append(out, sec)
		}
	}
	return out
}

// Fields returns the fields declared in a section of page.
func (s *Service) Fields(page, section string) []Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Field
	for _, e := range s.fields {
		if e.page == page && e.section == section {
			out = append(out, e.field)
		}
	}
	return out
}

// Registered returns the setting names registered on page.
func (s *Service) Registered(page string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, e := range s.settings {
		if e.page == page {
			out = append(out, e.name)
		}
	}
	return out
}

// HasPage reports whether anything was declared for page.
func (s *Service) HasPage(page string) bool {
	return len(s.Sections(page)) > 0 || len(s.Registered(page)) > 0
}

// Sanitize applies the sanitizer registered for name on page. ok is false when
// the name is not registered there.
func (s *Service) Sanitize(page, name, value string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.settings {
		if e.page == page && e.name == name {
			if e.sanitize == nil {
				return value, true
			}
			return e.sanitize(value), true
		}
	}
	return "", false
}

// Values reads the stored value of every setting registered on page.
func (s *Service) Values(page string) (map[string]string, error) {
	out := make(map[string]string)
	for _, name := range s.Registered(page) {
		v, err := s.store.Get(name)
		if err != nil {
			return nil, fmt.Errorf("get option %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// Save stores the sanitized form value of each setting registered on page.
// Names that are not registered on page are ignored. It returns what was stored.
func (s *Service) Save(page string, form map[string]string) (map[string]string, error) {
	saved := make(map[string]string)
	for _, name := range s.Registered(page) {
		raw, ok := form[name]
		if !ok {
			continue
		}
		clean, _ := s.Sanitize(page, name, raw)
		if err := s.store.Set(name, clean); err != nil {
			return saved, fmt.Errorf("set option %s: %w", name, err)
		}
		saved[name] = clean
	}
	return saved, nil
}
