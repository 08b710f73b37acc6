// Package cerr builds errors that carry structured fields, so that the place
// that finally logs an error gets the context of every layer it passed through.
package cerr

import (
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
)

type Context struct {
	fields log.Fields
}

type WrapContext struct {
	fields log.Fields
	cause  error
}

func Field(key string, value any) Context {
	return Context{}.Field(key, value)
}

func Wrap(err error) WrapContext {
	return WrapContext{cause: err}
}

func Error(msg string) error {
	return errors.NewWithDepth(1, msg)
}

func (c Context) Field(key string, value any) Context {
	return Context{fields: withField(c.fields, key, value)}
}

func (c Context) Wrap(err error) WrapContext {
	return WrapContext{
		fields: c.fields,
		cause:  err,
	}
}

func (c Context) Error(msg string) error {
	return attach(errors.NewWithDepth(1, msg), c.fields)
}

func (w WrapContext) Field(key string, value any) WrapContext {
	return WrapContext{
		fields: withField(w.fields, key, value),
		cause:  w.cause,
	}
}

func (w WrapContext) Error(msg string) error {
	// wrapping a nil error still has to produce an error
	if w.cause == nil {
		return attach(errors.NewWithDepth(1, msg), w.fields)
	}

	return attach(errors.WrapWithDepth(1, w.cause, msg), w.fields)
}

// Fields collects the fields of every layer of err. Outer layers win when
// the same key was set more than once.
func Fields(err error) log.Fields {
	fields := log.Fields{}

	var layers []*fieldsError
	for current := err; current != nil; current = errors.UnwrapOnce(current) {
		if f, ok := current.(*fieldsError); ok {
			layers = append(layers, f)
		}
	}

	for i := len(layers) - 1; i >= 0; i-- {
		for k, v := range layers[i].fields {
			fields[k] = v
		}
	}

	return fields
}

func Log(err error) {
	if err == nil {
		return
	}

	log.WithFields(Fields(err)).Error(err.Error())
}

func withField(fields log.Fields, key string, value any) log.Fields {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}

	newFields[key] = value
	return newFields
}

func attach(err error, fields log.Fields) error {
	if len(fields) == 0 {
		return err
	}

	return &fieldsError{
		cause:  err,
		fields: fields,
	}
}

type fieldsError struct {
	cause  error
	fields log.Fields
}

func (f *fieldsError) Error() string { return f.cause.Error() }
func (f *fieldsError) Cause() error  { return f.cause }
func (f *fieldsError) Unwrap() error { return f.cause }
