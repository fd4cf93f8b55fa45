// Package archive reads and writes surrogate fit data as JSON documents.
//
// A document names its model family, carries one time grid per spin sign
// with the two datapieces of every stored mode, and the NR calibration
// table. Decoding resolves the family through package models and checks
// the data against it, so a decoded Archive always binds into a Model.
//
// Files ending in ".gz" are gzip-compressed.
package archive
