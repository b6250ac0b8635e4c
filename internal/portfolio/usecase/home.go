package usecase

import (
	"context"

	"github.com/shandysiswandi/portfolio/internal/portfolio/entity"
)

// HomeOutput is the data bag handed to the home page template.
type HomeOutput struct {
	SiteName    string
	Version     string
	Year        int
	Credentials []entity.Credential
	Educations  []entity.Education
}

func (s *Usecase) Home(ctx context.Context) HomeOutput {
	_, span := s.startSpan(ctx, "Home")
	defer span.End()

	return HomeOutput{
		SiteName:    s.siteName,
		Version:     s.version,
		Year:        s.clock.Now().Year(),
		Credentials: entity.Credentials(),
		Educations:  entity.Educations(),
	}
}
