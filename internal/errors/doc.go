// Package errors provides the structured error type used across the
// kingdom randomizer.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata:
//
//	err := errors.NotFound("card not found").WithMeta("card_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := catalog.CardByID(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to resolve locked card")
//	}
//
// # Sampling outcomes
//
// The randomizer distinguishes two failure kinds and never conflates them:
//   - FailedPrecondition: the constraints cannot be met with the current
//     catalog and selection. Expected; callers keep the previous kingdom.
//   - InvalidArgument: the request itself is malformed (no sets selected,
//     include and exclude lists overlap). Indicates a configuration bug.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateNonEmpty("set_ids", opts.SetIDs, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
