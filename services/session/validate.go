package session

import (
	"studioquote/models"
)

// nextStep validates the session against its current step and returns the
// step that follows. Validation failures block the transition.
func nextStep(session *models.QuoteSession) (models.Step, error) {
	switch session.Step {
	case models.StepService:
		if err := validateService(session.Selection); err != nil {
			return "", err
		}
		return models.StepDetails, nil
	case models.StepDetails:
		if err := validateDetails(session.Selection); err != nil {
			return "", err
		}
		return models.StepLogistics, nil
	case models.StepLogistics:
		if err := validateLogistics(session.Selection); err != nil {
			return "", err
		}
		return models.StepContact, nil
	case models.StepContact:
		if err := validateContact(session.Contact); err != nil {
			return "", err
		}
		return models.StepQuote, nil
	case models.StepQuote:
		return "", &ValidationError{Field: "step", Reason: "quote is the final step"}
	}
	return "", &ValidationError{Field: "step", Reason: "unknown wizard step"}
}

func validateService(sel models.Selection) error {
	if sel.ServiceType == "" {
		return &ValidationError{Field: "serviceType", Reason: "a service must be selected"}
	}
	return nil
}

func validateDetails(sel models.Selection) error {
	if sel.SubType() == "" {
		return &ValidationError{Field: "subType", Reason: "a service option must be selected"}
	}
	if sel.ServiceType == models.ServicePhotography &&
		sel.PhotographySubType == models.PhotoRealEstate &&
		len(sel.PhotoRealEstateProperties) == 0 {
		return &ValidationError{Field: "photoRealEstateProperties", Reason: "at least one property is required"}
	}
	return nil
}

func validateLogistics(sel models.Selection) error {
	// Post-production is remote work: no venue to validate.
	if sel.ServiceType == models.ServicePost {
		return nil
	}
	if sel.Location == "" {
		return &ValidationError{Field: "location", Reason: "a city must be selected"}
	}
	if sel.LocationType == "" {
		return &ValidationError{Field: "locationType", Reason: "a location type must be selected"}
	}
	return nil
}

func validateContact(contact models.Contact) error {
	if contact.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if contact.Email == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	return nil
}
