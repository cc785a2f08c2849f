// Package uniqueid gera identificadores de texto a partir do relógio de
// parede intercalado com fragmentos aleatórios. Os ids são praticamente
// únicos sem coordenação externa, mas não são imprevisíveis e chamadas
// concorrentes no mesmo milissegundo ainda podem colidir — quem insere deve
// tratar violação de chave primária como falha possível (e rara).
package uniqueid

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// fragment retorna 4 dígitos base-36 aleatórios
func fragment() string {
	var b [4]byte
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b[:])
}

// New gera um id no layout
// rand4 + YYYY + MM + DD + rand4 + hh + mm + ss + rand4 + mmm + rand4
func New() string {
	now := time.Now()

	var sb strings.Builder
	sb.WriteString(fragment())
	sb.WriteString(now.Format("20060102"))
	sb.WriteString(fragment())
	sb.WriteString(now.Format("150405"))
	sb.WriteString(fragment())
	sb.WriteString(fmt.Sprintf("%03d", now.Nanosecond()/int(time.Millisecond)))
	sb.WriteString(fragment())

	return sb.String()
}

// NomeUnico deriva o handle de login da conta: milissegundos desde a época
// em base 36. Contas criadas no mesmo milissegundo colidem e a inserção
// falha pela restrição UNIQUE.
func NomeUnico() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36)
}
