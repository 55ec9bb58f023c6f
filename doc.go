// Package apicheck is a client for the ApiCheck address lookup and search API.
//
// The client validates query fields against per-country rules before any
// request is made, sends a GET request to the service and maps the JSON
// response, or the error envelope, into typed results and errors.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/apicheck"
//
//	client, err := apicheck.New(apicheck.Config{APIKey: "your-api-key"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	addr, err := client.LookupAddress(ctx, "nl", apicheck.Query{
//		apicheck.FieldPostalCode: "2513AA",
//		apicheck.FieldNumber:     "1",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(addr.Street, addr.Number, addr.PostalCode, addr.City, addr.Country.Name)
//
// Search passes its query through unvalidated:
//
//	res, err := client.Search(ctx, "be", string(apicheck.SearchCity), apicheck.Query{"name": "Namur"})
//	var cities []map[string]any
//	err = res.Decode(&cities)
//
// # Configuration
//
// Config can be filled by hand or loaded from the environment:
//
//	APICHECK_API_KEY      required
//	APICHECK_ENDPOINT     default https://api.apicheck.nl
//	APICHECK_API_VERSION  default v1
//	APICHECK_TIMEOUT      default 10s
//
//	client, err := apicheck.NewFromEnv(apicheck.WithLogger(slog.Default()))
//
// # Supported Countries
//
// Lookup is available for NL and LU. Search is available for NL, BE, LU and
// FR. Field validation rules exist for NL, BE and LU.
//
// # Error Handling
//
// Every failure can be matched with errors.Is:
//
//	switch {
//	case errors.Is(err, apicheck.ErrConfiguration):
//		// no API key or invalid config, nothing was sent
//	case errors.Is(err, apicheck.ErrUnsupportedCountry),
//		errors.Is(err, apicheck.ErrUnsupportedType),
//		errors.Is(err, apicheck.ErrValidation):
//		// rejected locally, nothing was sent
//	case errors.Is(err, apicheck.ErrNotFound):
//		// the service found no match
//	case errors.Is(err, apicheck.ErrTransport), errors.Is(err, apicheck.ErrDecode):
//		// network fault, empty or malformed response
//	}
//
// Classified API errors carry the HTTP status and remote error name:
//
//	var apiErr *apicheck.APIError
//	if errors.As(err, &apiErr) {
//		log.Printf("kind=%s status=%d code=%s", apiErr.Kind, apiErr.StatusCode, apiErr.Code)
//	}
//
// Field validation errors carry the field, country and offending value:
//
//	var ve *apicheck.ValidationError
//	if errors.As(err, &ve) {
//		log.Printf("field %s (%s): %q", ve.Field, ve.Country, ve.Value)
//	}
//
// The client never retries; retry policy is left to the caller.
package apicheck
