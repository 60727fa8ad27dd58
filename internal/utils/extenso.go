// internal/utils/extenso.go
package utils

import (
	"math"
	"strings"
)

var (
	unidades = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
		"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	dezenas  = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	centenas = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
		"seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// grupoPorExtenso escreve um número de 1 a 999.
func grupoPorExtenso(n int) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "cem"
	}
	var partes []string
	if c := n / 100; c > 0 {
		partes = append(partes, centenas[c])
	}
	resto := n % 100
	if resto > 0 {
		if resto < 20 {
			partes = append(partes, unidades[resto])
		} else {
			d := dezenas[resto/10]
			if u := resto % 10; u > 0 {
				d += " e " + unidades[u]
			}
			partes = append(partes, d)
		}
	}
	return strings.Join(partes, " e ")
}

// inteiroPorExtenso escreve um inteiro até a casa dos bilhões.
func inteiroPorExtenso(n int64) string {
	if n == 0 {
		return "zero"
	}

	type escala struct {
		valor    int64
		singular string
		plural   string
	}
	escalas := []escala{
		{1_000_000_000, "bilhão", "bilhões"},
		{1_000_000, "milhão", "milhões"},
		{1_000, "mil", "mil"},
		{1, "", ""},
	}

	var partes []string
	for _, e := range escalas {
		g := int(n / e.valor)
		n %= e.valor
		if g == 0 {
			continue
		}
		texto := grupoPorExtenso(g)
		switch {
		case e.valor == 1:
			partes = append(partes, texto)
		case e.valor == 1_000:
			// "mil", nunca "um mil"
			if g == 1 {
				partes = append(partes, "mil")
			} else {
				partes = append(partes, texto+" mil")
			}
		default:
			if g == 1 {
				partes = append(partes, "um "+e.singular)
			} else {
				partes = append(partes, texto+" "+e.plural)
			}
		}
	}

	// Conector "e" antes do último grupo quando ele é < 100 ou centena exata.
	if len(partes) > 1 {
		ultimo := partes[len(partes)-1]
		resto := strings.Join(partes[:len(partes)-1], ", ")
		return resto + " e " + ultimo
	}
	return partes[0]
}

// ValorPorExtenso escreve um valor monetário em reais por extenso.
// Ex.: 1500.00 -> "mil e quinhentos reais"; 0.50 -> "cinquenta centavos".
func ValorPorExtenso(valor float64) string {
	if valor < 0 {
		valor = -valor
	}
	// Arredonda para evitar 1499.999... virar "mil quatrocentos e noventa e nove".
	total := int64(math.Round(valor * 100))
	reais := total / 100
	centavos := int(total % 100)

	var partes []string
	if reais > 0 {
		moeda := "reais"
		if reais == 1 {
			moeda = "real"
		}
		texto := inteiroPorExtenso(reais)
		// "um milhão de reais", não "um milhão reais"
		if reais >= 1_000_000 && reais%1_000_000 == 0 {
			moeda = "de " + moeda
		}
		partes = append(partes, texto+" "+moeda)
	}
	if centavos > 0 {
		moeda := "centavos"
		if centavos == 1 {
			moeda = "centavo"
		}
		partes = append(partes, grupoPorExtenso(centavos)+" "+moeda)
	}
	if len(partes) == 0 {
		return "zero reais"
	}
	return strings.Join(partes, " e ")
}
