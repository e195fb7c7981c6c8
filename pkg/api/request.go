package api

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/bastiangx/wordmatch/internal/utils"
	enLocal "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTrans "github.com/go-playground/validator/v10/translations/en"
	jsoniter "github.com/json-iterator/go"
)

// json matches object keys exactly, so {"Input": ...} does not satisfy "input"
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// MatchRequest is the query endpoint body. Input is a pointer so a missing
// field and an empty string can both be rejected by the same rule set.
type MatchRequest struct {
	Input *string `json:"input" validate:"required,nonblank" label:"input"`
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("label")
	})

	local := enLocal.New()
	var found bool
	trans, found = ut.New(local).GetTranslator(local.Locale())
	if !found {
		panic("api: missing en translator")
	}
	if err := enTrans.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("api: register translations: %v", err))
	}

	if err := initCustomValidator(validate); err != nil {
		panic(fmt.Sprintf("api: register custom validators: %v", err))
	}
}

func initCustomValidator(validate *validator.Validate) error {
	if err := validate.RegisterValidation("nonblank", nonBlank); err != nil {
		return err
	}
	return validate.RegisterTranslation("nonblank", trans,
		func(ut ut.Translator) error {
			return ut.Add("nonblank", "{0} must not be blank", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("nonblank", fe.Field())
			return msg
		},
	)
}

// nonBlank fails strings that are empty after trimming whitespace
func nonBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return false
	}
	return !utils.IsBlank(field.String())
}

// Validate runs the struct rules and returns the first translated failure
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(verrs[0].Translate(trans))
	}
	return err
}

// decodeMatchRequest turns a raw body into the trimmed query string.
// A missing body and the falsy JSON values null, false, 0 and "" all count
// as no body.
func decodeMatchRequest(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", newRequestError(KindBodyRequired, "", nil)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", newRequestError(KindMalformedBody, "", err)
	}
	if isFalsy(raw) {
		return "", newRequestError(KindBodyRequired, "", nil)
	}

	var req MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", newRequestError(KindInvalidInput, "", err)
	}
	if err := Validate(&req); err != nil {
		return "", newRequestError(KindInvalidInput, err.Error(), nil)
	}
	return utils.TrimWord(*req.Input), nil
}

func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	}
	return false
}
