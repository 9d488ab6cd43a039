/*
Package layout is about the geometry of ideographic description sequences.

Ideographic Description Characters (IDCs, U+2FF0…U+2FFB) describe how
the components of a CJK ideograph are arranged on the square character
cell. This package assigns every operand of an IDC a rectangle within the
unit square and offers a composition operator to nest rectangles, in order
to place the components of deeply nested descriptions.

Rectangles are not meant for faithful rendering. They are a rough
approximation, good enough to draw a component map of a character and to
tell which part of a character a component occupies.

Composition

Composing an outer rectangle with an inner one does not scale linearly.
Instead it uses a blend, which for the left edge reads

   x = outer.x1 + inner.x1 − outer.x1·inner.x1

and symmetrically for the top edge, while widths and heights multiply.
For components touching the right or bottom border of the cell this is
identical to affine nesting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout
