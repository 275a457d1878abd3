package domain

import "time"

// Specialties é o catálogo de especialidades sugeridas. O campo continua aberto:
// um seller pode ter qualquer especialidade não vazia.
var Specialties = []string{
	"Zapatillas", "Remeras", "Jeans", "Buzos", "Camperas", "Vestidos",
	"Shorts", "Accesorios", "Bolsos", "Relojes", "Lentes", "Gorras",
	"Medias", "Ropa Interior", "Deportiva", "Formal", "Casual", "Infantil",
}

// Seller é um fornecedor do diretório, dono da sua lista ordenada de links.
type Seller struct {
	ID          string       `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Specialty   string       `json:"specialty" db:"specialty"`
	Description string       `json:"description,omitempty" db:"description"`
	Links       []SellerLink `json:"links" db:"-"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// SellerLink é um link de catálogo. Não tem ciclo de vida próprio.
type SellerLink struct {
	ID        string    `json:"id" db:"id"`
	SellerID  string    `json:"seller_id" db:"seller_id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url" db:"url"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SellerInput é o payload de criação/edição de seller.
// Links com nome e URL vazios são descartados antes da validação de URL.
type SellerInput struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Specialty   string            `json:"specialty" validate:"required,max=100"`
	Description string            `json:"description,omitempty" validate:"max=1000"`
	Links       []SellerLinkInput `json:"links" validate:"dive"`
}

// SellerLinkInput é um link informado no formulário.
type SellerLinkInput struct {
	Name string `json:"name" validate:"required_with=URL,max=200"`
	URL  string `json:"url" validate:"required_with=Name,omitempty,url"`
}

// SellerFilter filtra o diretório por especialidade e texto livre.
type SellerFilter struct {
	Specialty string
	Search    string
}
