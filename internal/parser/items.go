package parser

import (
	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/token"
)

// parseImport: 'import' QualName ';'
func (p *Parser) parseImport() (*ast.Import, error) {
	start, err := p.consume(token.Import)
	if err != nil {
		return nil, err
	}
	path, err := p.parseQualName()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Path: path, Location: start.Loc.Combine(end.Loc)}, nil
}

// parseStruct: 'struct' Ident GenericParams? ('(' QualName ')')? '{' Field* '}'
func (p *Parser) parseStruct() (*ast.Struct, error) {
	start, err := p.consume(token.Struct)
	if err != nil {
		return nil, err
	}
	name, err := p.consume(token.Identifier)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	var super ast.QualifiedName
	if p.expect(token.LParen) {
		p.advance()
		if super, err = p.parseQualName(); err != nil {
			return nil, err
		}
		if _, err = p.consume(token.RParen); err != nil {
			return nil, err
		}
	}

	if _, err = p.consume(token.LBrace); err != nil {
		return nil, err
	}
	var fields []*ast.StructField
	for !p.expect(token.RBrace) {
		field, err := p.parseStructField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	end, err := p.consume(token.RBrace)
	if err != nil {
		return nil, err
	}

	return &ast.Struct{
		Name:     name.Text,
		Generics: generics,
		Super:    super,
		Fields:   fields,
		Location: start.Loc.Combine(end.Loc),
	}, nil
}

// parseGenericParams: '<' (Ident (',' Ident)*)? ','? '>'. Без '<' nil.
func (p *Parser) parseGenericParams() ([]*ast.GenericParam, error) {
	if !p.expect(token.LAngle) {
		return nil, nil
	}
	p.advance()
	params := []*ast.GenericParam{}
	for !p.expect(token.RAngle) {
		name, err := p.consume(token.Identifier)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.GenericParam{Name: name.Text, Location: name.Loc})
		if !p.expect(token.Comma) {
			break
		}
		p.advance()
	}
	if _, err := p.consume(token.RAngle); err != nil {
		return nil, err
	}
	return params, nil
}

// parseStructField: Ident ':' Type ';'
func (p *Parser) parseStructField() (*ast.StructField, error) {
	name, err := p.consume(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.StructField{Name: name.Text, Type: typ, Location: name.Loc.Combine(typ.Loc())}, nil
}

// parseFunction: 'fn' Ident GenericParams? '(' (Param (',' Param)*)? ')' '->' Type Block
func (p *Parser) parseFunction() (*ast.Function, error) {
	start, err := p.consume(token.Fn)
	if err != nil {
		return nil, err
	}
	name, err := p.consume(token.Identifier)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericParams()
	if err != nil {
		return nil, err
	}

	if _, err = p.consume(token.LParen); err != nil {
		return nil, err
	}
	params := []*ast.Param{}
	for !p.expect(token.RParen) {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.expect(token.Comma) {
			break
		}
		p.advance()
	}
	if _, err = p.consume(token.RParen); err != nil {
		return nil, err
	}

	if _, _, err = p.consumePair(token.Minus, token.RAngle, "'->'"); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Name:     name.Text,
		Generics: generics,
		Params:   params,
		Return:   ret,
		Body:     body,
		Location: start.Loc.Combine(body.Location),
	}, nil
}

// parseParam: Ident ':' Type
func (p *Parser) parseParam() (*ast.Param, error) {
	name, err := p.consume(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Param{Name: name.Text, Type: typ, Location: name.Loc.Combine(typ.Loc())}, nil
}
