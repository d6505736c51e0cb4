// Package applicant turns raw application form submissions into validated
// applicant records and stores them.
//
// The pipeline has two pure stages. Extract reshapes a RawFieldMap into a
// Candidate: scalars are trimmed, the count-plus-indexed-key encoding of
// pronouns and sexuality is rebuilt into slices, and structural problems
// (oversized or unparsable arrays) are recorded rather than raised.
// Validator.Validate then runs every field check in a fixed order, reporting
// at most one message per field, and returns either a *Record or a
// validator.ValidationErrors holding the messages in that order:
//
//	v := applicant.NewValidator(applicant.DefaultLimits())
//	rec, err := v.Validate(raw)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		return errs.Messages()
//	}
//
// All thresholds live in Limits. DefaultLimits holds the production table;
// LoadLimits overlays a YAML file on top of it.
//
// Service wraps the pipeline with resume handling and persistence through a
// Repository. PGStore and MongoStore are the two Repository implementations.
package applicant
