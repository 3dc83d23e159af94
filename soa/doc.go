// Package soa lays out several parallel arrays in one allocation
// (structure-of-arrays storage) and hands out typed views over them.
//
// A Storage owns raw bytes only. Elements inside it are written and cleared by
// the caller; Free releases the whole region at once. Regions whose element
// types hold Go pointers are requested from a vexmem.ScannedResource so the
// garbage collector sees them.
package soa
