// Package orderblob reads an orders export stored as a JSON object in an
// S3-compatible bucket (AWS S3 or MinIO).
package orderblob
