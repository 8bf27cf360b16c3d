// Package objc maps protobuf descriptors onto the Objective-C identifiers
// generated code declares for them: class and enum names, enum value
// constants, field and oneof accessors, extension methods, and the
// per-file root class.
//
// Naming splits along one line. Anything that becomes an Objective-C type
// carries the file's class prefix and goes through a Namer, which owns the
// prefix resolution. Member level names (fields, oneofs, extension methods)
// never take a prefix and are plain functions.
package objc
