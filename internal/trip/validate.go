package trip

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tripcost/internal/apperr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidatePlan checks a plan at the API boundary. Every complete leg needs a
// date and dates must not decrease across complete legs.
func ValidatePlan(plan Plan) error {
	if err := validate.Struct(plan); err != nil {
		return apperr.Validation(describe(err), err)
	}

	complete := 0
	prevDate := ""
	for i, leg := range plan.Legs {
		if !leg.Complete() {
			continue
		}
		complete++
		if leg.DepartureDate == "" {
			return apperr.Validation(fmt.Sprintf("legs[%d]: departure_date is required", i), nil)
		}
		if prevDate != "" && leg.DepartureDate < prevDate {
			return apperr.Validation(
				fmt.Sprintf("legs[%d]: departure_date %s is before %s", i, leg.DepartureDate, prevDate), nil)
		}
		prevDate = leg.DepartureDate
	}

	if complete == 0 {
		return apperr.Validation("plan has no leg with both airports set", nil)
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
}

func validationf(format string, args ...any) error {
	return apperr.Validation(fmt.Sprintf(format, args...), nil)
}
