// Package highlight adds terminal syntax coloring to attributed source
// lines. It is purely cosmetic: any failure (unknown file type, tokenizer
// error) degrades to the plain input, never an error.
package highlight
