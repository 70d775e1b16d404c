// Package polyexpr models single-variable integer polynomial expressions as
// immutable trees and provides evaluation and algebraic simplification over
// them.
//
// Trees are built by nesting constructors:
//
//     // (2 * X - 1) + 6 / 2
//     expr := polyexpr.Add(
//         polyexpr.Sub(polyexpr.Mul(polyexpr.Int(2), polyexpr.X()), polyexpr.Int(1)),
//         polyexpr.Div(polyexpr.Int(6), polyexpr.Int(2)),
//     )
//
//     value, err := polyexpr.EvaluateInt(expr, 4) // 10
//     simple, err := polyexpr.Simplify(expr)      // 2 * X - 1 + 3
//
// Literals are arbitrary precision integers and division is floor division,
// truncating toward negative infinity.
//
// The rendering returned by String() uses the minimum parentheses required by
// the rules:
//
//     - Add never parenthesises its operands.
//     - Sub and Mul parenthesise operands that are additions.
//     - Div parenthesises operands that are additions or subtractions.
package polyexpr
