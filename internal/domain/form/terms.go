package form

// TermSlots is the number of warranty clauses an order can carry.
const TermSlots = 6

// DefaultTerms are the canned warranty clauses offered on a new order.
var DefaultTerms = [TermSlots]string{
	"A garantia de 90 dias será apenas para a peça ou serviço trocado descrito nesta O.S.",
	"Dispositivos que não ligam ou têm a tela quebrada não são de nossa responsabilidade por defeitos além dos descritos nesta ordem de serviço, e não há possibilidade de testar o mesmo.",
	"Se o seu dispositivo entrou em contato com água ou qualquer tipo de líquido e umidade, é possível que a abertura do mesmo danifique a placa, tornando-a impossível de reparar e inutilizando a placa.",
	"A garantia não cobre mau uso, dispositivos molhados, quedas, telas rachadas ou abertura por pessoas não autorizadas.",
	"Em serviços de reparo e recuperação na placa-mãe, há um alto risco de queimar a placa e tornar o dispositivo inutilizável. Nesses casos, não nos responsabilizamos por quaisquer danos, deixando o cliente ciente do risco de perda do equipamento.",
	"A não retirada do dispositivo dentro de 90 dias corridos resultará em uma cobrança de custódia.",
}

// Term is one warranty clause and its checkbox.
type Term struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

func defaultTerms() [TermSlots]Term {
	var t [TermSlots]Term
	for i, text := range DefaultTerms {
		t[i] = Term{Text: text}
	}
	return t
}
