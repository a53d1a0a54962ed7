package parser

import (
	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/token"
)

// parseQualName: Ident ('::' Ident)*, левоассоциативно.
func (p *Parser) parseQualName() (ast.QualifiedName, error) {
	name, err := p.consume(token.Identifier)
	if err != nil {
		return nil, err
	}
	var left ast.QualifiedName = &ast.Name{Name: name.Text, Location: name.Loc}
	for p.expectPair(token.Colon, token.Colon) {
		p.advance()
		p.advance()
		attr, err := p.consume(token.Identifier)
		if err != nil {
			return nil, err
		}
		left = &ast.Namespace{
			Prefix:   left,
			Attr:     attr.Text,
			Location: left.Loc().Combine(attr.Loc),
		}
	}
	return left, nil
}

// parseType: TypeTerminal '&'?
func (p *Parser) parseType() (ast.Type, error) {
	typ, err := p.parseTypeTerminal()
	if err != nil {
		return nil, err
	}
	if p.expect(token.Ampersand) {
		amp := p.advance()
		return &ast.ReferenceType{Inner: typ, Location: typ.Loc().Combine(amp.Loc)}, nil
	}
	return typ, nil
}

func (p *Parser) parseTypeTerminal() (ast.Type, error) {
	if p.expect(token.LParen) {
		return p.parseFunctionType()
	}
	return p.parseNameType()
}

// parseNameType: QualName. Аргументы дженериков пока не разбираются.
func (p *Parser) parseNameType() (*ast.NameType, error) {
	name, err := p.parseQualName()
	if err != nil {
		return nil, err
	}
	return &ast.NameType{Name: name, Location: name.Loc()}, nil
}

// parseFunctionType: '(' (Type (',' Type)*)? ')' '->' Type
func (p *Parser) parseFunctionType() (*ast.FunctionType, error) {
	start, err := p.consume(token.LParen)
	if err != nil {
		return nil, err
	}
	params := []ast.Type{}
	for !p.expect(token.RParen) {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, typ)
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
	return &ast.FunctionType{Params: params, Return: ret, Location: start.Loc.Combine(ret.Loc())}, nil
}
