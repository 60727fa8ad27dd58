// internal/recibo/pdf.go
package recibo

import (
	"bytes"
	"fmt"

	"github.com/TerraVistaLoteamentos/api-sgci/internal/utils"
	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// GerarPDF desenha o recibo completo numa página A4 e devolve os bytes.
// Renderização pura: nenhuma regra de negócio vive aqui.
func GerarPDF(r *Recibo, verificacao PayloadVerificacao) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Cabeçalho do emissor
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, tr(r.EmissorNome), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr("CNPJ/CPF: "+formatarDocumento(r.EmissorDocumento)), "", 1, "L", false, 0, "")
	if r.EmissorEndereco != "" {
		pdf.CellFormat(0, 5, tr(r.EmissorEndereco), "", 1, "L", false, 0, "")
	}
	contato := r.EmissorTelefone
	if r.EmissorEmail != "" {
		if contato != "" {
			contato += " · "
		}
		contato += r.EmissorEmail
	}
	if contato != "" {
		pdf.CellFormat(0, 5, tr(contato), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	// Título e valor
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr("RECIBO Nº "+r.Numero), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(utils.FormatarMoeda(r.Valor)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, tr("("+r.ValorPorExtenso+")"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Corpo
	pdf.SetFont("Helvetica", "", 11)
	linha := func(rotulo, valor string) {
		if valor == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 7, tr(rotulo), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, tr(valor), "", "L", false)
	}
	linha("Recebido de:", r.RecebidoDe)
	if r.Documento != "" {
		linha("Documento:", formatarDocumento(r.Documento))
	}
	linha("Referente a:", r.Referente)
	linha("Forma de pagamento:", r.FormaPagamento)
	linha("Data do pagamento:", utils.FormatarData(r.DataPagamento))
	linha("Situação:", r.Status)
	pdf.Ln(4)

	// Dados bancários aparecem apenas enquanto o pagamento está pendente.
	if r.Status == "Pendente" && r.Banco != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr("Dados para transferência"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Banco %s · Agência %s · Conta %s", r.Banco, r.Agencia, r.Conta)), "", 1, "L", false, 0, "")
		if r.TitularConta != "" {
			pdf.CellFormat(0, 6, tr("Titular: "+r.TitularConta), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	// Bloco PIX com QR do payload, quando houver
	if r.PayloadPix != "" {
		if err := desenharQR(pdf, "pix", r.PayloadPix, 15, pdf.GetY(), 38); err != nil {
			return nil, fmt.Errorf("erro ao gerar QR do PIX: %w", err)
		}
		pdf.SetXY(58, pdf.GetY()+4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr("Pague com PIX"), "", 1, "L", false, 0, "")
		if r.ChavePix != "" {
			pdf.SetX(58)
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, 5, tr("Chave: "+r.ChavePix), "", 1, "L", false, 0, "")
		}
		pdf.SetY(pdf.GetY() + 28)
	}

	// Rodapé de autenticidade: QR de verificação + hash
	pdf.SetY(-70)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(3)
	if err := desenharQR(pdf, "verificacao", verificacao.URL, 15, pdf.GetY(), 30); err != nil {
		return nil, fmt.Errorf("erro ao gerar QR de verificação: %w", err)
	}
	pdf.SetXY(50, pdf.GetY()+2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(0, 4, tr("Autenticidade: aponte a câmera para o QR ou acesse "+verificacao.URL), "", "L", false)
	pdf.SetX(50)
	pdf.MultiCell(0, 4, "Hash: "+verificacao.Hash, "", "L", false)
	pdf.SetX(50)
	pdf.MultiCell(0, 4, tr("Emitido em "+utils.FormatarData(r.DataEmissao)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func desenharQR(pdf *fpdf.Fpdf, nome, conteudo string, x, y, lado float64) error {
	png, err := qrcode.Encode(conteudo, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(nome, opt, bytes.NewReader(png))
	pdf.ImageOptions(nome, x, y, lado, lado, false, opt, 0, "")
	return pdf.Error()
}

// formatarDocumento aplica a máscara usual de CPF ou CNPJ.
func formatarDocumento(d string) string {
	switch len(d) {
	case 11:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	case 14:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
	return d
}
