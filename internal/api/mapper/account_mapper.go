package mapper

import (
	"mangoadvisory/internal/api/dto/v1/account"
	"mangoadvisory/internal/api/validation"
	"mangoadvisory/internal/models"
	"mangoadvisory/internal/repository"
)

// SignupRequestToModel converts a validated signup into a domain model.
// The password stays out of the model; the service hashes it separately.
func SignupRequestToModel(req *account.SignupRequest) *models.Account {
	return &models.Account{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        validation.NormalizePhone(req.Phone),
		AgreeToTerms: req.AgreeToTerms,
	}
}

// UpdateRequestToFields converts an update payload to the repository allow-list
func UpdateRequestToFields(req *account.UpdateRequest) repository.UpdateAccountFields {
	fields := repository.UpdateAccountFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Phone != "" {
		fields.Phone = validation.NormalizePhone(req.Phone)
	}
	return fields
}

// AccountToResponse converts a domain Account to its API representation
func AccountToResponse(a *models.Account) *account.Response {
	if a == nil {
		return nil
	}

	return &account.Response{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Phone:        a.Phone,
		AgreeToTerms: a.AgreeToTerms,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// AccountsToResponses converts a slice of accounts to API representations
func AccountsToResponses(accounts []*models.Account) []*account.Response {
	result := make([]*account.Response, len(accounts))
	for i, a := range accounts {
		result[i] = AccountToResponse(a)
	}
	return result
}
