package names

// reservedWords holds every identifier generated declarations must avoid:
// language keywords, runtime typedefs, macros that commonly shadow plain
// names, and the GPBMessage instance methods a field accessor could
// otherwise override. NSObject's own method surface lives in
// nsObjectMethods.
var reservedWords = wordSet(
	// Objective-C keywords that are not also C keywords.
	"id", "_cmd", "super", "in", "out", "inout", "bycopy", "byref", "oneway",
	"self", "instancetype", "nullable", "nonnull", "nil", "Nil",
	"YES", "NO", "weak",

	// C and C++ keywords, through C++11.
	"and", "and_eq", "alignas", "alignof", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char16_t", "char32_t", "class",
	"compl", "const", "constexpr", "const_cast", "continue", "decltype",
	"default", "delete", "double", "dynamic_cast", "else", "enum", "explicit",
	"export", "extern", "false", "float", "for", "friend", "goto", "if",
	"inline", "int", "long", "mutable", "namespace", "new", "noexcept", "not",
	"not_eq", "nullptr", "operator", "or", "or_eq", "private", "protected",
	"public", "register", "reinterpret_cast", "return", "short", "signed",
	"sizeof", "static", "static_assert", "static_cast", "struct", "switch",
	"template", "this", "thread_local", "throw", "true", "try", "typedef",
	"typeid", "typename", "union", "unsigned", "using", "virtual", "void",
	"volatile", "wchar_t", "while", "xor", "xor_eq",

	// C99.
	"restrict",

	// GCC and Clang extension.
	"typeof",

	// Not a keyword, but a macro that breaks declarations all the same.
	"NULL",

	// The C standard allows these to be macros, and on some SDKs they are.
	"stdin", "stdout", "stderr",

	// Objective-C runtime typedefs from <objc/runtime.h>.
	"Category", "Ivar", "Method", "Protocol",

	// GPBMessage instance methods a proto-declared name could override.
	// Only the zero-argument ones matter, setFoo:/hasFoo: style selectors
	// cannot collide with generated property names.
	"clear", "data", "delimitedData", "descriptor", "extensionRegistry",
	"extensionsCurrentlySet", "initialized", "isInitialized", "serializedSize",
	"sortedExtensionsInUse", "unknownFields",

	// MacTypes.h typedefs.
	"Fixed", "Fract", "Size", "LogicalAddress", "PhysicalAddress", "ByteCount",
	"ByteOffset", "Duration", "AbsoluteTime", "OptionBits", "ItemCount",
	"PBVersion", "ScriptCode", "LangCode", "RegionCode", "OSType",
	"ProcessSerialNumber", "Point", "Rect", "FixedPoint", "FixedRect", "Style",
	"StyleParameter", "StyleField", "TimeScale", "TimeBase", "TimeRecord",
)

// nsObjectMethods is the zero-argument instance method surface of NSObject
// and its SDK categories. A generated property whose getter matched one of
// these would silently override runtime behavior, so Sanitize renames it.
// Selectors that take arguments contain ':' and can never collide.
var nsObjectMethods = wordSet(
	"CAMLType",
	"accessibilityActivate",
	"accessibilityActivationPoint",
	"accessibilityCustomActions",
	"accessibilityCustomRotors",
	"accessibilityDecrement",
	"accessibilityElementCount",
	"accessibilityElementDidBecomeFocused",
	"accessibilityElementDidLoseFocus",
	"accessibilityElementIsFocused",
	"accessibilityElements",
	"accessibilityElementsHidden",
	"accessibilityFrame",
	"accessibilityHint",
	"accessibilityIdentifier",
	"accessibilityIncrement",
	"accessibilityLabel",
	"accessibilityLanguage",
	"accessibilityNavigationStyle",
	"accessibilityPath",
	"accessibilityPerformEscape",
	"accessibilityPerformMagicTap",
	"accessibilityTraits",
	"accessibilityValue",
	"accessibilityViewIsModal",
	"allowsWeakReference",
	"attributeKeys",
	"autoContentAccessingProxy",
	"autorelease",
	"class",
	"classCode",
	"classDescription",
	"classForArchiver",
	"classForCoder",
	"classForKeyedArchiver",
	"classForPortCoder",
	"className",
	"copy",
	"dealloc",
	"debugDescription",
	"description",
	"exposedBindings",
	"finalize",
	"hash",
	"init",
	"isAccessibilityElement",
	"isFault",
	"isNSArray__",
	"isNSCFConstantString__",
	"isNSData__",
	"isNSDate__",
	"isNSDictionary__",
	"isNSNumber__",
	"isNSObject__",
	"isNSOrderedSet__",
	"isNSSet__",
	"isNSString__",
	"isNSTimeZone__",
	"isNSValue__",
	"isProxy",
	"mutableCopy",
	"objectSpecifier",
	"observationInfo",
	"release",
	"retain",
	"retainCount",
	"retainWeakReference",
	"scriptingProperties",
	"self",
	"superclass",
	"toManyRelationshipKeys",
	"toOneRelationshipKeys",
	"zone",
)
