// Package cache provides the in-memory audio response cache used to avoid
// redundant speech-synthesis calls. Entries are bounded by a fixed entry
// count and expire after a fixed time-to-live; contents live for the process
// lifetime only and are never serialized.
package cache
