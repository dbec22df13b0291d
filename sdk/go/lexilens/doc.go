// Package lexilens provides in-process terms-of-service risk analysis for
// Go programs. It wraps the deterministic rule-based classifier and,
// optionally, the remote generative-language analyzer behind one call.
//
// Usage:
//
//	lx, err := lexilens.New()
//	result, err := lx.Analyze(ctx, documentText)
//	fmt.Println(result.Verdict.Title)
//
// The SDK links directly against internal packages for zero-subprocess
// overhead. External users import github.com/lexilens/lexilens/sdk/go/lexilens.
package lexilens
