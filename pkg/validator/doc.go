// Package validator provides a small set of composable validation rules and
// the machinery to evaluate them in a fixed order.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates every rule it is given, in order, and collects
// the failures into a ValidationErrors slice that satisfies the error
// interface. Apply never stops early, so a single call can surface every
// problem with a submission at once.
//
// Within one field it is usually wrong to report more than one problem: an
// empty name is not also "too long". First folds several rules into one that
// reports only the first failure, and WithMessage replaces the generic
// message with the user-facing one:
//
//	err := validator.Apply(
//	    validator.First(
//	        validator.RequiredString("fname", form.FirstName).WithMessage("First Name is Empty"),
//	        validator.MaxLenString("fname", form.FirstName, 50).WithMessage("First Name is Too Long"),
//	    ),
//	    validator.MinNum("age", form.Age, 13).WithMessage("Age is Too Low"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs.Messages())
//	}
//
// Rules are built per call and hold no shared state; the package is safe for
// concurrent use.
package validator
