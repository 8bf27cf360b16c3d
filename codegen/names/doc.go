// Package names turns protobuf schema element names into legal Objective-C
// identifiers.
//
// The package is pure string manipulation: CamelCase conversion with acronym
// handling, prefix-aware sanitization against the compiled-in reserved word
// and NSObject method tables, and the special method name predicates Cocoa
// memory management rules care about. Nothing here touches descriptors or
// configuration; callers decide which prefix and collision suffix apply to
// each element kind so suffix rules stay consistent across generators.
//
// All scanning is byte oriented. Schema identifiers are ASCII by
// construction, so multi-byte runes never carry case information.
package names
