// Package voucher contiene la lógica pura del ciclo de vida de comprobantes:
// saneamiento de campos numéricos, composición del timestamp y
// ordenamiento/agrupación del listado. Sin dependencias de infraestructura.
package voucher

import (
	"sort"
	"strings"

	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/pkg/fechas"
)

// SoloDigitos elimina todo carácter que no sea un dígito decimal, conservando
// el orden relativo. Nunca rechaza: un input sin dígitos produce cadena vacía.
// Es idempotente.
func SoloDigitos(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// ComponerFechaHora combina fecha (yyyy-MM-dd) y hora (HH:mm) en el timestamp
// del contrato. Los segundos son siempre cero al crear.
func ComponerFechaHora(fecha, hora string) string {
	return fecha + "T" + hora + ":00"
}

// OrdenarDescendente ordena el listado por FechaHora descendente (la
// transacción más reciente primero). Los empates quedan en orden arbitrario.
func OrdenarDescendente(list []entity.Voucher) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].FechaHora.After(list[j].FechaHora)
	})
}

// GrupoDia es un grupo de vouchers de un mismo día calendario.
type GrupoDia struct {
	Fecha    string // día en forma larga es-PE, ej. "1 de mayo de 2024"
	Vouchers []entity.Voucher
}

// AgruparPorDia particiona un listado (ya ordenado) en grupos por día
// calendario. Es una sola pasada estable: el orden relativo del input se
// conserva tanto entre grupos como dentro de cada grupo, por lo que el orden
// descendente sobrevive a la agrupación.
func AgruparPorDia(list []entity.Voucher) []GrupoDia {
	var grupos []GrupoDia
	indice := make(map[string]int)
	for _, v := range list {
		dia := fechas.FechaLarga(v.FechaHora)
		i, ok := indice[dia]
		if !ok {
			i = len(grupos)
			indice[dia] = i
			grupos = append(grupos, GrupoDia{Fecha: dia})
		}
		grupos[i].Vouchers = append(grupos[i].Vouchers, v)
	}
	return grupos
}
