package domain

type SellerAccountStatus string

const (
	SellerAccountStatusActive   SellerAccountStatus = "ACTIVE"
	SellerAccountStatusInactive SellerAccountStatus = "INACTIVE"
)

// SellerAccount é uma conta de vendedor Amazon gerenciada pela plataforma.
type SellerAccount struct {
	ID          string              `json:"id"`
	SellerID    string              `json:"seller_id"`
	Name        string              `json:"name"`
	Nickname    *string             `json:"nickname"`
	Marketplace string              `json:"marketplace"`
	Country     string              `json:"country"`
	SecretName  *string             `json:"secret_name"`
	Status      SellerAccountStatus `json:"status"`
}

type SellerAccountResponse struct {
	ID          string              `json:"id"`
	SellerID    string              `json:"seller_id"`
	Name        string              `json:"name"`
	Nickname    *string             `json:"nickname"`
	Marketplace string              `json:"marketplace"`
	Country     string              `json:"country"`
	HasToken    bool                `json:"hasToken"`
	Status      SellerAccountStatus `json:"status"`
}

type UpdateSellerAccountRequest struct {
	ID         string  `json:"id"`
	Nickname   *string `json:"nickname,omitempty"`
	SecretName *string `json:"secret_name,omitempty"`
	Token      *string `json:"token,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type UpdateSellerAccountResponse struct {
	ID         string  `json:"id"`
	Nickname   *string `json:"nickname,omitempty"`
	SecretName *string `json:"secret_name,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
