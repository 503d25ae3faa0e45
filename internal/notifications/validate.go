package notifications

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"campusfood/internal/dispatch"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// requiredFields is the full field set for send-otp. The contract is one
// actionable error listing every field the caller must supply, not just the
// first missing one.
var requiredFields = []string{"email", "otp", "service_id", "template_id", "user_id"}

// ValidatePayload checks the raw payload and returns the typed message. Pure,
// deterministic, no I/O.
func ValidatePayload(p SendOTPPayload) (OTPMessage, error) {
	if err := validate.Struct(p); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return OTPMessage{}, dispatch.Internal("payload validation: " + err.Error())
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return OTPMessage{}, dispatch.Invalid(
					"Missing required fields: " + strings.Join(requiredFields, ", "))
			}
		}
		return OTPMessage{}, dispatch.Invalid("email must be a valid address")
	}

	return OTPMessage{
		Email:      p.Email,
		Code:       p.Code,
		ServiceID:  p.ServiceID,
		TemplateID: p.TemplateID,
		UserID:     p.UserID,
		Metadata:   p.Metadata,
	}, nil
}
