package apiclient

// CreateOrganisationRequest registers an organisation and its first user.
type CreateOrganisationRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateOrganisationResponse is returned for a created organisation.
type CreateOrganisationResponse struct {
	OrganisationID string `json:"organisationId"`
	APIKey         string `json:"apiKey"`
}

// ValidateUserRequest checks a user's credentials within an organisation.
type ValidateUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	OrganisationID string `json:"organisationId" validate:"required"`
}

// ValidateUserResponse carries the API key of a validated user.
type ValidateUserResponse struct {
	APIKey string `json:"apiKey"`
}
