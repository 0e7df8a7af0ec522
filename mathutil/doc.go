// Package mathutil holds the numeric functions used to score and train Decisions. Everything here
// is a pure function; the only state is the random Source handed to RandomNormalEstimate.
//
// None of the functions guard against overflow. Sigmoid saturates to 0 or 1 for large |x|, and
// Softmax will return NaNs once an input is large enough for math.Exp to reach +Inf.
package mathutil
