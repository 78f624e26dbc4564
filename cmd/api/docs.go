package main

// @title           CYF Chat API
// @version         1.0
// @description     API do quadro de mensagens do chat

// @contact.name   API Support

// @host      localhost:3000
// @BasePath  /
