// Package fuzztests houses Go fuzz harnesses for the adze front end
// (source -> lexer -> parser). They guard against panics, hangs in error
// recovery and broken location invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
