package lookup

import "errors"

var (
	ErrContentRequired = errors.New("conteúdo é obrigatório")
	ErrListProducts    = errors.New("erro ao listar produtos afiliados")
)
