// Package createdat resolves the capture time of a photo and renders it as stamp text.
//
// Attribution follows a fixed chain (embedded EXIF capture time, then filesystem
// modification time). When neither source yields a time the stamp text is the
// NoTimestamp sentinel.
package createdat
