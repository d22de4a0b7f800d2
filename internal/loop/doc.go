// Package loop runs the guessing game.
//
// A Loop asks its Prompter for a value, compares it with a fixed target and
// keeps asking until the two are equal. There is no attempt limit and no
// input validation: wrong or unparseable answers just lead to another
// prompt. The loop ends in exactly one way, by writing the success message
// once and moving to the Done state.
//
// Comparison is pluggable through Matcher. Loose mirrors the coercive
// equality of dynamic languages (the text "30" equals the number 30) and is
// the default; Strict only accepts the exact decimal text of the target.
package loop
