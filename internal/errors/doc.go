// Package errors provides coded, structured errors for rpg-chargen.
//
// Every layer returns *Error values so the CLI can pick an exit status and a
// readable message without string matching.
//
// # Basic Usage
//
//	err := errors.NotFoundf("race %q not found", id)
//	err := errors.InvalidArgumentf("unsupported ability method: %s", method)
//
// Metadata:
//
//	err := errors.ResourceExhaustedf("no %s left to draw", pool).
//	    WithMeta("pool", pool)
//
// Wrapping keeps the original code:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
//
// # Codes
//
//   - InvalidArgument: unknown race/class/background id, bad flag value
//   - NotFound: saved character does not exist
//   - AlreadyExists: saved character id collision
//   - ResourceExhausted: a proficiency or language draw ran out of candidates
//   - FailedPrecondition: operation needs a dependency that is not configured
//   - Unavailable: SRD API or redis could not be reached
//   - Canceled: context canceled between generation stages
//   - Internal: everything else
package errors
