// Package fuzztests houses Go fuzz harnesses for the text side of the editor
// (source -> lexer -> parser -> shapes -> scene). They guard against panics,
// hangs and span drift on arbitrary program text.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
