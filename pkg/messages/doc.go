// Package messages provides message-table implementations for the
// validation engine: the built-in English defaults and localized
// catalogs loaded from YAML or JSON documents.
//
// A catalog maps BCP 47 language tags to code → template pairs and
// negotiates the best table for a requested locale list via
// golang.org/x/text language matching. Templates use named %{param}
// placeholders; codes a language does not cover fall back per code to
// the English defaults (or any injected fallback table).
//
// Tables are injected into the form controller by reference and looked
// up at display time, so swapping tables switches the language of all
// subsequently rendered errors.
package messages
