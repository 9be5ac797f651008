// Package transpile generates target-language source for code segments
// and optionally compiles and runs the results.
//
// Each Transpiler is a line-pattern generator: it recognizes a small set
// of statement shapes (function definitions, returns, assignments,
// print calls, bare calls) and maps them onto the target language,
// degrading anything it does not recognize to a marked comment or an
// UNSUPPORTED print instead of failing. The Orchestrator fans segments
// out concurrently, writes the generated sources under a per-run
// directory, and can invoke the target toolchains to execute them.
package transpile
