package feed

import (
	"net/url"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cardIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)
)

// validatorInstance configures and returns the shared validator used for
// feed documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("card_id", func(fl validator.FieldLevel) bool {
			return cardIDPattern.MatchString(fl.Field().String())
		})

		// Action URLs may use any scheme, including app deep links.
		_ = v.RegisterValidation("action_url", func(fl validator.FieldLevel) bool {
			u, err := url.Parse(fl.Field().String())
			return err == nil && u.Scheme != ""
		})

		_ = v.RegisterValidation("image_url", func(fl validator.FieldLevel) bool {
			u, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			switch u.Scheme {
			case "http", "https":
				return u.Host != ""
			case "file":
				return u.Path != ""
			default:
				return false
			}
		})

		validateInst = v
	})

	return validateInst
}
