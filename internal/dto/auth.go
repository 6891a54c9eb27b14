package dto

import "github.com/okanoworks/orgtask-api/internal/models"

// UserDTO is the user shape returned by the API. The password hash
// never appears in a response.
type UserDTO struct {
	ID    uint64      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	OrgID uint64      `json:"org_id"`
}

// OrganizationDTO is the organization shape returned by the API.
type OrganizationDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// RegisterResponse is returned by POST /api/auth/register-org.
type RegisterResponse struct {
	Message      string          `json:"message"`
	Token        string          `json:"token"`
	User         UserDTO         `json:"user"`
	Organization OrganizationDTO `json:"organization"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		OrgID: user.OrgID,
	}
}

func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:   org.ID,
		Name: org.Name,
	}
}
