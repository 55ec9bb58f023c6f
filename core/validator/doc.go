// Package validator checks and normalizes address query fields against the
// per-country rules in package country.
//
// Field validates a single value. Query looks a field up in a query map,
// enforces presence for required fields and validates what it finds:
//
//	v, err := validator.Query(country.NL, query, country.FieldPostalCode, true)
//	if err != nil {
//		var ve *validator.ValidationError
//		if errors.As(err, &ve) {
//			log.Printf("%s: %s", ve.TranslationKey, ve.Message)
//		}
//		return err
//	}
//	query[country.FieldPostalCode] = v.Text // "2513AA"
//
// Fields without a rule for the country, such as numberAddition, pass through
// unchanged. Countries without a rule set fail with country.ErrUnsupportedCountry
// before any field is inspected.
//
// Every rejection is a *ValidationError wrapping ErrValidation. TranslationKey
// and TranslationValues let callers render localized messages.
package validator
