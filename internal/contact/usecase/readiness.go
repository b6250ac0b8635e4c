package usecase

import "github.com/shandysiswandi/portfolio/internal/contact/entity"

// MissingSettings lists, in a fixed order, the required mail settings that
// are empty. The result is never nil.
func (s *Usecase) MissingSettings() []string {
	missing := make([]string, 0, 3)
	if s.settings.Sender == "" {
		missing = append(missing, entity.SettingSender)
	}
	if s.settings.Password == "" {
		missing = append(missing, entity.SettingPassword)
	}
	if s.settings.Receiver == "" {
		missing = append(missing, entity.SettingReceiver)
	}
	return missing
}
