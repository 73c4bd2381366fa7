// Package canonical defines the dialect-independent representation that all
// format conversions funnel through.
//
// A [Package] is constructed once by a dialect parser and is read-only from
// that point on: serializers project it into dialect text without mutating
// it. The registry persists a package as canonical.json, produced by
// [MarshalPackage] and consumed by [UnmarshalPackage], tagged
// content.format = "canonical", content.version = "1.0" so the schema can
// evolve without breaking stored artifacts.
//
// Body content is modeled as an ordered list of typed [Section] values
// (instructions, rules, examples, persona, tools, context, hook, custom)
// preceded by exactly one metadata section. The section union is closed:
// decoding an unknown section tag is a [ParseError], not a silent skip.
//
// # Dialect extensions
//
// Fields that exist in only one dialect (Cursor globs, Droid argument hints,
// OpenCode agent modes) are carried in [Extensions] as one typed struct per
// dialect. A serializer reads only its own variant, so extension data
// survives a round-trip through the canonical form back to the originating
// dialect and is invisible to every other target.
package canonical
