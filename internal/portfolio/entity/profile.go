package entity

// Credential is a certification or course shown on the home page.
type Credential struct {
	Title  string
	Issuer string
	Year   int
}

// Education is a formal education entry shown on the home page.
type Education struct {
	Course      string
	Institution string
	Period      string
}

// Credentials is the fixed list rendered on the home page.
func Credentials() []Credential {
	return []Credential{
		{Title: "AWS Certified Cloud Practitioner", Issuer: "Amazon Web Services", Year: 2024},
		{Title: "Go: Concorrência e Boas Práticas", Issuer: "Alura", Year: 2023},
		{Title: "Docker e Kubernetes", Issuer: "Udemy", Year: 2023},
		{Title: "Python para Ciência de Dados", Issuer: "Fundação Bradesco", Year: 2022},
	}
}

// Educations is the fixed list rendered on the home page.
func Educations() []Education {
	return []Education{
		{Course: "Análise e Desenvolvimento de Sistemas", Institution: "Universidade Paulista", Period: "2021 - 2023"},
		{Course: "Técnico em Informática", Institution: "ETEC", Period: "2018 - 2020"},
	}
}
