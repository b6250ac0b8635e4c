package usecase

import "context"

type HealthOutput struct {
	Status      string
	MissingEnvs []string
	AppVersion  string
}

// Health reports liveness together with the current settings gaps. It
// never fails.
func (s *Usecase) Health(ctx context.Context) HealthOutput {
	_, span := s.startSpan(ctx, "Health")
	defer span.End()

	return HealthOutput{
		Status:      healthStatusOK,
		MissingEnvs: s.MissingSettings(),
		AppVersion:  s.settings.Version,
	}
}
