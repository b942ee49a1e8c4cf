// Package encoding implements ordinal categorical encoding: replacing the
// categories of selected columns with dense zero-based integer codes.
//
// # Strategies
//
// Two code-assignment strategies are supported:
//
//   - MethodOrdered (default): categories are numbered in ascending order of
//     the target mean per category. For a colour column whose target means
//     are blue=0.5, red=0.8, grey=0.1, the codes are grey=0, blue=1, red=2.
//   - MethodArbitrary: categories are numbered on a first-seen basis while
//     scanning the fitting data top to bottom.
//
// # Fit / Transform protocol
//
// The encoder first learns the category→code tables (Fit), then applies them
// (Transform). InverseTransform recovers the original categories from codes:
//
//	enc, err := encoding.NewOrdinalEncoder(
//	    encoding.WithColumns("colour"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	if err := enc.Fit(train, target); err != nil {
//	    return err
//	}
//
//	encoded, err := enc.Transform(test)
//
// Columns not configured are left untouched; when no columns are configured,
// every categorical column of the fitting frame is encoded.
//
// # Unseen categories
//
// Categories that were not present during fitting transform to null cells
// rather than raising an error, and codes outside the learned codomain
// inverse-transform to null cells. This is deliberate: rare categories should
// be grouped before encoding, and downstream consumers are expected to handle
// the residual nulls.
//
// # Persistence
//
// A fitted encoder serializes with MarshalBinary/Save into a checksummed,
// compressed binary form and restores with UnmarshalBinary/Load. The codec is
// chosen with WithStateCompression.
//
// # Concurrency
//
// A fitted encoder may serve concurrent Transform and InverseTransform calls;
// the learned mapping is immutable and only replaced wholesale by a new Fit.
// Fitting concurrently with any other call on the same instance is a usage
// error. No internal locking is provided.
package encoding
