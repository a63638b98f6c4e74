/*
Package cssom provides interfaces for CSS stylesheets as used by themes.

Themes are written in CSS. Selectors match widgets by element name, style
classes and pseudo-classes, and declarations set the values of stylable
properties, e.g.

    .panel-button:hover { opacity: 0.8; color: #eeeeec; }

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
(see package douceuradapter). The theme engine works on these interfaces
only, and never sees a concrete parser.

Status

The model is restricted to what themes need: qualified rules with
selectors and declarations. At-rules are not interpreted, but qualified rules
nested in them are visible to clients.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
