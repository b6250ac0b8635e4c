package inbound

type ContactRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Mensagem string `json:"mensagem"`
}

type ContactResponse struct {
	Msg string `json:"msg" example:"Mensagem enviada com sucesso!"`
}

type HealthResponse struct {
	Status      string   `json:"status" example:"ok"`
	MissingEnvs []string `json:"missing_envs"`
	AppVersion  string   `json:"app_version" example:"1.0.0"`
}
